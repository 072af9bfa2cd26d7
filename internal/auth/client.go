package auth

import "context"

// Profile, uzak kimlik sağlayıcıdan dönen kullanıcı profili.
type Profile struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
}

// Client, uzak kimlik sağlayıcı sözleşmesidir. Yerel depo bu arayüzün
// arkasındaki sağlayıcıyı tanımaz; UID yalnızca users.remote_uid
// kolonunda saklanır.
type Client interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	FetchProfile(ctx context.Context, uid string) (*Profile, error)
	Logout(ctx context.Context) error
}
