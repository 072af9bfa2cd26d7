package domain

const (
	EventStatusActive    = "Active"
	EventStatusHold      = "Hold"
	EventStatusCancelled = "Cancelled"
)

type Event struct {
	ID                int64    `json:"id"`
	Title             string   `json:"title"`
	Date              string   `json:"date"`
	Timestamp         int64    `json:"timestamp"`
	Location          string   `json:"location"`
	Description       string   `json:"description"`
	Status            string   `json:"status"`
	TicketPrice       float64  `json:"ticket_price"`
	TicketQuantity    int      `json:"ticket_quantity"`
	CoverImagePath    string   `json:"cover_image_path"`
	GalleryImagePaths []string `json:"gallery_image_paths"`
	EventType         string   `json:"event_type"`
}

// EventFilter alanları nil ise o koşul uygulanmaz; sıfır değer ile
// "filtre yok" ayrımı işaretçi üzerinden yapılır.
type EventFilter struct {
	Title        *string
	Location     *string
	MinTimestamp *int64
	MaxTimestamp *int64
}

type EventRepository interface {
	Create(event *Event) error
	Update(event *Event) error
	Delete(id int64) error
	FindByID(id int64) (*Event, error)
	FindAll() ([]*Event, error)
	FindByStatus(status string) ([]*Event, error)
	Search(filter EventFilter) ([]*Event, error)
	CountByStatus(status string) (int, error)
	FindWithZeroTimestamp() ([]*Event, error)
	UpdateTimestamp(id int64, timestamp int64) error
}

type EventService interface {
	CreateEvent(event *Event, cb Callback[int64])
	UpdateEvent(event *Event, cb DoneFunc)
	DeleteEvent(id int64, cb DoneFunc)
	ChangeStatus(id int64, status string, cb DoneFunc)
	GetEventByID(id int64) (*Event, error)
	GetAllEvents() ([]*Event, error)
	GetEventsByStatus(status string) ([]*Event, error)
	SearchEvents(filter EventFilter) ([]*Event, error)
	UpcomingEvents() ([]*Event, error)
	PastEvents() ([]*Event, error)
	CountByStatus(status string) (int, error)
	BackfillTimestamps(cb Callback[int])
}
