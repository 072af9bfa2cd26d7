package service

import (
	"errors"
	"fmt"
	"time"

	"eventhive/internal/concurrent"
	"eventhive/internal/domain"
	"eventhive/pkg/logger"
	"eventhive/pkg/ticketcode"
)

const maxCodeAttempts = 10

type TicketService struct {
	ticketRepo       domain.TicketRepository
	userRepo         domain.UserRepository
	eventRepo        domain.EventRepository
	notificationRepo domain.NotificationRepository
	writer           *concurrent.Writer
	logger           logger.Logger
}

func NewTicketService(
	ticketRepo domain.TicketRepository,
	userRepo domain.UserRepository,
	eventRepo domain.EventRepository,
	notificationRepo domain.NotificationRepository,
	writer *concurrent.Writer,
	logger logger.Logger,
) domain.TicketService {
	return &TicketService{
		ticketRepo:       ticketRepo,
		userRepo:         userRepo,
		eventRepo:        eventRepo,
		notificationRepo: notificationRepo,
		writer:           writer,
		logger:           logger,
	}
}

// Purchase tek yazıcı görevi olarak çalışır: varlık kontrolleri, kod
// üretimi ve ekleme arasına başka yazma giremez. Kod çakışması yine de
// benzersiz indeksle yakalanır ve yeni kodla tekrar denenir.
func (s *TicketService) Purchase(userID, eventID int64, cb domain.Callback[string]) {
	ok := s.writer.Submit("ticket_purchase", func() error {
		code, err := s.purchase(userID, eventID)
		if cb != nil {
			cb(code, err)
		}
		return err
	})
	if !ok && cb != nil {
		cb("", domain.ErrWriterBusy)
	}
}

func (s *TicketService) purchase(userID, eventID int64) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}

	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		return "", err
	}
	if event == nil {
		return "", domain.ErrEventNotFound
	}

	ticket := &domain.Ticket{
		UserID:            userID,
		EventID:           eventID,
		PurchaseTimestamp: time.Now().UnixMilli(),
		EventTitle:        event.Title,
		EventDate:         event.Date,
		EventLocation:     event.Location,
	}

	inserted := false
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		ticket.UniqueCode = ticketcode.Generate(eventID)

		err := s.ticketRepo.Insert(ticket)
		if err == nil {
			inserted = true
			break
		}
		if errors.Is(err, domain.ErrDuplicateTicketCode) {
			s.logger.Warn("Bilet kodu çakıştı, yeniden üretiliyor", map[string]interface{}{
				"code":    ticket.UniqueCode,
				"attempt": attempt + 1,
			})
			continue
		}
		return "", err
	}
	if !inserted {
		return "", domain.ErrCodeRetryExhausted
	}

	s.logger.Info("Bilet satın alındı", map[string]interface{}{
		"user_id":  userID,
		"event_id": eventID,
		"code":     ticket.UniqueCode,
	})

	s.notifyPurchase(user, event, ticket)
	return ticket.UniqueCode, nil
}

// Bildirim yazılamazsa satın alma geri alınmaz.
func (s *TicketService) notifyPurchase(user *domain.User, event *domain.Event, ticket *domain.Ticket) {
	n := &domain.Notification{
		Title:          "Ticket Purchased",
		Message:        fmt.Sprintf("Your ticket for '%s' is confirmed. Code: %s", event.Title, ticket.UniqueCode),
		Timestamp:      time.Now().UnixMilli(),
		UserID:         user.ID,
		RelatedEventID: event.ID,
	}
	if err := s.notificationRepo.Create(n); err != nil {
		s.logger.Error("Satın alma bildirimi oluşturulamadı", map[string]interface{}{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}
}

func (s *TicketService) GetTicketByCode(code string) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrTicketNotFound
	}
	return ticket, nil
}

func (s *TicketService) GetTicketsForUser(userID int64) ([]*domain.Ticket, error) {
	return s.ticketRepo.ListForUser(userID)
}

func (s *TicketService) SearchTickets(filter domain.TicketFilter) ([]*domain.Ticket, error) {
	return s.ticketRepo.Search(filter)
}

func (s *TicketService) CountForUser(userID int64) (int, error) {
	return s.ticketRepo.CountForUser(userID)
}

func (s *TicketService) CountForEvent(eventID int64) (int, error) {
	return s.ticketRepo.CountForEvent(eventID)
}
