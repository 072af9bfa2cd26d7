package service

import (
	"fmt"
	"strings"
	"time"

	"eventhive/internal/concurrent"
	"eventhive/internal/domain"
	"eventhive/pkg/logger"
)

// Etkinlik tarihleri "12 Dec - 10 PM" biçiminde serbest metin olarak
// girilir; yıl eklenerek çözümlenir.
const dateLayout = "2 Jan - 3 PM 2006"

type EventService struct {
	eventRepo        domain.EventRepository
	ticketRepo       domain.TicketRepository
	notificationRepo domain.NotificationRepository
	writer           *concurrent.Writer
	logger           logger.Logger
}

func NewEventService(
	eventRepo domain.EventRepository,
	ticketRepo domain.TicketRepository,
	notificationRepo domain.NotificationRepository,
	writer *concurrent.Writer,
	logger logger.Logger,
) domain.EventService {
	return &EventService{
		eventRepo:        eventRepo,
		ticketRepo:       ticketRepo,
		notificationRepo: notificationRepo,
		writer:           writer,
		logger:           logger,
	}
}

// DeriveTimestamp metin tarihi sıralanabilir UTC milisaniyeye çevirir.
// Çözümlenemeyen tarih 0 döner ve satır "tarihsiz" kabul edilir.
func DeriveTimestamp(date string) int64 {
	date = strings.TrimSpace(date)
	if date == "" {
		return 0
	}

	withYear := fmt.Sprintf("%s %d", date, time.Now().UTC().Year())
	t, err := time.ParseInLocation(dateLayout, withYear, time.UTC)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

func (s *EventService) CreateEvent(event *domain.Event, cb domain.Callback[int64]) {
	ok := s.writer.Submit("event_create", func() error {
		id, err := s.createEvent(event)
		if cb != nil {
			cb(id, err)
		}
		return err
	})
	if !ok && cb != nil {
		cb(0, domain.ErrWriterBusy)
	}
}

func (s *EventService) createEvent(event *domain.Event) (int64, error) {
	if err := validateEvent(event); err != nil {
		return 0, err
	}
	event.Timestamp = DeriveTimestamp(event.Date)

	if err := s.eventRepo.Create(event); err != nil {
		return 0, err
	}

	s.logger.Info("Etkinlik oluşturuldu", map[string]interface{}{"id": event.ID, "title": event.Title})
	return event.ID, nil
}

func (s *EventService) UpdateEvent(event *domain.Event, cb domain.DoneFunc) {
	ok := s.writer.Submit("event_update", func() error {
		err := s.updateEvent(event)
		if cb != nil {
			cb(err)
		}
		return err
	})
	if !ok && cb != nil {
		cb(domain.ErrWriterBusy)
	}
}

func (s *EventService) updateEvent(event *domain.Event) error {
	existing, err := s.eventRepo.FindByID(event.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrEventNotFound
	}
	if err := validateEvent(event); err != nil {
		return err
	}
	event.Timestamp = DeriveTimestamp(event.Date)
	return s.eventRepo.Update(event)
}

func validateEvent(event *domain.Event) error {
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: etkinlik başlığı boş olamaz", domain.ErrValidation)
	}
	if event.TicketPrice < 0 {
		return fmt.Errorf("%w: bilet fiyatı negatif olamaz", domain.ErrValidation)
	}
	if event.TicketQuantity < 0 {
		return fmt.Errorf("%w: bilet adedi negatif olamaz", domain.ErrValidation)
	}
	return nil
}

func (s *EventService) DeleteEvent(id int64, cb domain.DoneFunc) {
	ok := s.writer.Submit("event_delete", func() error {
		err := s.deleteEvent(id)
		if cb != nil {
			cb(err)
		}
		return err
	})
	if !ok && cb != nil {
		cb(domain.ErrWriterBusy)
	}
}

func (s *EventService) deleteEvent(id int64) error {
	existing, err := s.eventRepo.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrEventNotFound
	}
	if err := s.eventRepo.Delete(id); err != nil {
		return err
	}
	s.logger.Info("Etkinlik silindi", map[string]interface{}{"id": id})
	return nil
}

// ChangeStatus durumu günceller ve bilet sahiplerine bildirim bırakır.
// Bildirim yazılamazsa durum değişikliği geri alınmaz, sadece loglanır.
func (s *EventService) ChangeStatus(id int64, status string, cb domain.DoneFunc) {
	ok := s.writer.Submit("event_change_status", func() error {
		err := s.changeStatus(id, status)
		if cb != nil {
			cb(err)
		}
		return err
	})
	if !ok && cb != nil {
		cb(domain.ErrWriterBusy)
	}
}

func (s *EventService) changeStatus(id int64, status string) error {
	if status != domain.EventStatusActive && status != domain.EventStatusHold && status != domain.EventStatusCancelled {
		return fmt.Errorf("%w: geçersiz etkinlik durumu: %s", domain.ErrValidation, status)
	}

	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return domain.ErrEventNotFound
	}
	if event.Status == status {
		return nil
	}

	event.Status = status
	if err := s.eventRepo.Update(event); err != nil {
		return err
	}

	s.notifyHolders(event, status)
	return nil
}

func (s *EventService) notifyHolders(event *domain.Event, status string) {
	holderIDs, err := s.ticketRepo.ListHolderIDs(event.ID)
	if err != nil {
		s.logger.Error("Bilet sahipleri alınamadı, bildirim atlandı", map[string]interface{}{
			"event_id": event.ID,
			"error":    err.Error(),
		})
		return
	}

	title := "Event Update"
	message := fmt.Sprintf("The event '%s' is now %s.", event.Title, strings.ToLower(status))
	if status == domain.EventStatusCancelled {
		title = "Event Cancelled"
		message = fmt.Sprintf("The event '%s' has been cancelled.", event.Title)
	}

	now := time.Now().UnixMilli()
	for _, userID := range holderIDs {
		n := &domain.Notification{
			Title:          title,
			Message:        message,
			Timestamp:      now,
			UserID:         userID,
			RelatedEventID: event.ID,
		}
		if err := s.notificationRepo.Create(n); err != nil {
			s.logger.Error("Durum bildirimi oluşturulamadı", map[string]interface{}{
				"event_id": event.ID,
				"user_id":  userID,
				"error":    err.Error(),
			})
		}
	}
}

func (s *EventService) GetEventByID(id int64) (*domain.Event, error) {
	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func (s *EventService) GetAllEvents() ([]*domain.Event, error) {
	return s.eventRepo.FindAll()
}

func (s *EventService) GetEventsByStatus(status string) ([]*domain.Event, error) {
	return s.eventRepo.FindByStatus(status)
}

func (s *EventService) SearchEvents(filter domain.EventFilter) ([]*domain.Event, error) {
	return s.eventRepo.Search(filter)
}

func (s *EventService) UpcomingEvents() ([]*domain.Event, error) {
	now := time.Now().UnixMilli()
	return s.eventRepo.Search(domain.EventFilter{MinTimestamp: &now})
}

func (s *EventService) PastEvents() ([]*domain.Event, error) {
	now := time.Now().UnixMilli()
	one := int64(1)
	return s.eventRepo.Search(domain.EventFilter{MinTimestamp: &one, MaxTimestamp: &now})
}

func (s *EventService) CountByStatus(status string) (int, error) {
	return s.eventRepo.CountByStatus(status)
}

// BackfillTimestamps, zaman damgası sütunu eklenmeden önce yazılmış
// satırları tarar ve metin tarihten türetir. Callback'e güncellenen
// satır sayısı döner.
func (s *EventService) BackfillTimestamps(cb domain.Callback[int]) {
	ok := s.writer.Submit("event_backfill_timestamps", func() error {
		count, err := s.backfillTimestamps()
		if cb != nil {
			cb(count, err)
		}
		return err
	})
	if !ok && cb != nil {
		cb(0, domain.ErrWriterBusy)
	}
}

func (s *EventService) backfillTimestamps() (int, error) {
	events, err := s.eventRepo.FindWithZeroTimestamp()
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, event := range events {
		ts := DeriveTimestamp(event.Date)
		if ts == 0 {
			continue
		}
		if err := s.eventRepo.UpdateTimestamp(event.ID, ts); err != nil {
			return updated, err
		}
		updated++
	}

	if updated > 0 {
		s.logger.Info("Etkinlik zaman damgaları dolduruldu", map[string]interface{}{"count": updated})
	}
	return updated, nil
}
