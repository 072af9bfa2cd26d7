package service

import (
	"eventhive/internal/concurrent"
	"eventhive/internal/domain"
	"eventhive/pkg/logger"
)

type NotificationService struct {
	notificationRepo domain.NotificationRepository
	writer           *concurrent.Writer
	logger           logger.Logger
}

func NewNotificationService(notificationRepo domain.NotificationRepository, writer *concurrent.Writer, logger logger.Logger) domain.NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		writer:           writer,
		logger:           logger,
	}
}

func (s *NotificationService) GetNotificationsForUser(userID int64) ([]*domain.Notification, error) {
	return s.notificationRepo.ListForUser(userID)
}

func (s *NotificationService) MarkRead(id int64, cb domain.DoneFunc) {
	ok := s.writer.Submit("notification_mark_read", func() error {
		err := s.notificationRepo.MarkRead(id)
		if cb != nil {
			cb(err)
		}
		return err
	})
	if !ok && cb != nil {
		cb(domain.ErrWriterBusy)
	}
}

func (s *NotificationService) MarkAllRead(userID int64, cb domain.DoneFunc) {
	ok := s.writer.Submit("notification_mark_all_read", func() error {
		err := s.notificationRepo.MarkAllRead(userID)
		if cb != nil {
			cb(err)
		}
		return err
	})
	if !ok && cb != nil {
		cb(domain.ErrWriterBusy)
	}
}

func (s *NotificationService) CountUnread(userID int64) (int, error) {
	return s.notificationRepo.CountUnread(userID)
}
