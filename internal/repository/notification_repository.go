package repository

import (
	"database/sql"
	"fmt"

	"eventhive/internal/domain"
	"eventhive/pkg/logger"
)

type NotificationRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewNotificationRepository(db *sql.DB, logger logger.Logger) domain.NotificationRepository {
	return &NotificationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *NotificationRepository) Create(notification *domain.Notification) error {
	query := `
		INSERT INTO notifications (title, message, timestamp, is_read, user_id, related_event_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.Exec(
		query,
		notification.Title,
		notification.Message,
		notification.Timestamp,
		boolToInt(notification.IsRead),
		notification.UserID,
		notification.RelatedEventID,
	)

	if err != nil {
		r.logger.Error("Bildirim oluşturulamadı", map[string]interface{}{"user_id": notification.UserID, "error": err.Error()})
		return fmt.Errorf("bildirim oluşturulamadı: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("bildirim kimliği alınamadı: %w", err)
	}
	notification.ID = id

	return nil
}

func (r *NotificationRepository) ListForUser(userID int64) ([]*domain.Notification, error) {
	query := `
		SELECT id, title, COALESCE(message, ''), timestamp, is_read, user_id, related_event_id
		FROM notifications
		WHERE user_id = ?
		ORDER BY timestamp DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		r.logger.Error("Bildirimler listelenemedi", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return nil, fmt.Errorf("bildirimler listelenemedi: %w", err)
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		var isRead int
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Timestamp, &isRead, &n.UserID, &n.RelatedEventID); err != nil {
			return nil, fmt.Errorf("bildirim satırı okunamadı: %w", err)
		}
		n.IsRead = isRead == 1
		notifications = append(notifications, &n)
	}

	return notifications, rows.Err()
}

func (r *NotificationRepository) MarkRead(id int64) error {
	res, err := r.db.Exec(`UPDATE notifications SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		r.logger.Error("Bildirim okundu işaretlenemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("bildirim güncellenemedi: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("bildirim güncellenemedi: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotificationNotFound
	}

	return nil
}

func (r *NotificationRepository) MarkAllRead(userID int64) error {
	_, err := r.db.Exec(`UPDATE notifications SET is_read = 1 WHERE user_id = ?`, userID)
	if err != nil {
		r.logger.Error("Bildirimler okundu işaretlenemedi", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return fmt.Errorf("bildirimler güncellenemedi: %w", err)
	}
	return nil
}

func (r *NotificationRepository) CountUnread(userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM notifications WHERE user_id = ? AND is_read = 0`, userID).Scan(&count)
	if err != nil {
		r.logger.Error("Okunmamış bildirim sayısı alınamadı", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return 0, fmt.Errorf("bildirim sayısı alınamadı: %w", err)
	}
	return count, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
