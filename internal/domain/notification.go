package domain

type Notification struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Timestamp      int64  `json:"timestamp"`
	IsRead         bool   `json:"is_read"`
	UserID         int64  `json:"user_id"`
	RelatedEventID int64  `json:"related_event_id"`
}

type NotificationRepository interface {
	Create(notification *Notification) error
	ListForUser(userID int64) ([]*Notification, error)
	MarkRead(id int64) error
	MarkAllRead(userID int64) error
	CountUnread(userID int64) (int, error)
}

type NotificationService interface {
	GetNotificationsForUser(userID int64) ([]*Notification, error)
	MarkRead(id int64, cb DoneFunc)
	MarkAllRead(userID int64, cb DoneFunc)
	CountUnread(userID int64) (int, error)
}
