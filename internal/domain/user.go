package domain

const (
	UserRoleStandard  = "Standard"
	UserRoleOrganizer = "Organizer"
	UserRoleAdmin     = "Admin"
)

type User struct {
	ID           int64  `json:"id"`
	RemoteUID    string `json:"remote_uid,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Phone        string `json:"phone"`
}

type UserRepository interface {
	Create(user *User) error
	FindByID(id int64) (*User, error)
	FindByEmail(email string) (*User, error)
	FindAll() ([]*User, error)
	Update(user *User) error
	Delete(id int64) error
	CountByRole(role string) (int, error)
}

type UserService interface {
	Register(user *User, plainPassword string, cb Callback[int64])
	Login(email, password string) (*User, error)
	GetUserByID(id int64) (*User, error)
	GetAllUsers() ([]*User, error)
	UpdateUser(user *User, cb DoneFunc)
	DeleteUser(id int64, cb DoneFunc)
	CountByRole(role string) (int, error)
}
