package domain

type Ticket struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"user_id"`
	EventID           int64  `json:"event_id"`
	UniqueCode        string `json:"unique_code"`
	PurchaseTimestamp int64  `json:"purchase_timestamp"`

	// Satın alma anında etkinlikten kopyalanan görüntüleme alanları
	EventTitle    string `json:"event_title"`
	EventDate     string `json:"event_date"`
	EventLocation string `json:"event_location"`
}

// TicketFilter, bir kullanıcının biletleri üzerinde arama yapar; Query
// etkinlik başlığı veya konumu ile eşleşir, zaman sınırları etkinliğin
// türetilmiş zaman damgası üzerindendir. nil alan uygulanmaz.
type TicketFilter struct {
	UserID       int64
	Query        *string
	MinTimestamp *int64
	MaxTimestamp *int64
}

type TicketRepository interface {
	Insert(ticket *Ticket) error
	CodeExists(code string) (bool, error)
	FindByCode(code string) (*Ticket, error)
	ListForUser(userID int64) ([]*Ticket, error)
	Search(filter TicketFilter) ([]*Ticket, error)
	CountForUser(userID int64) (int, error)
	CountForEvent(eventID int64) (int, error)
	ListHolderIDs(eventID int64) ([]int64, error)
}

type TicketService interface {
	Purchase(userID, eventID int64, cb Callback[string])
	GetTicketByCode(code string) (*Ticket, error)
	GetTicketsForUser(userID int64) ([]*Ticket, error)
	SearchTickets(filter TicketFilter) ([]*Ticket, error)
	CountForUser(userID int64) (int, error)
	CountForEvent(eventID int64) (int, error)
}
