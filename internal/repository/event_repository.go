package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"eventhive/internal/domain"
	"eventhive/pkg/logger"
)

const eventColumns = `id, title, COALESCE(date, ''), timestamp, COALESCE(location, ''), COALESCE(description, ''),
	status, ticket_price, ticket_quantity, COALESCE(cover_image_path, ''), COALESCE(gallery_image_paths, ''), event_type`

// Tarihsiz satırlar (timestamp = 0) listenin sonuna atılır, geri kalanı
// türetilmiş zaman damgasına göre artan sıradadır.
const eventOrder = ` ORDER BY CASE WHEN timestamp = 0 THEN 1 ELSE 0 END, timestamp ASC`

type EventRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewEventRepository(db *sql.DB, logger logger.Logger) domain.EventRepository {
	return &EventRepository{
		db:     db,
		logger: logger,
	}
}

func (r *EventRepository) Create(event *domain.Event) error {
	query := `
		INSERT INTO events (title, date, timestamp, location, description, status, ticket_price,
			ticket_quantity, cover_image_path, gallery_image_paths, event_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if event.Status == "" {
		event.Status = domain.EventStatusActive
	}
	if event.EventType == "" {
		event.EventType = "Other"
	}

	res, err := r.db.Exec(
		query,
		event.Title,
		event.Date,
		event.Timestamp,
		event.Location,
		event.Description,
		event.Status,
		event.TicketPrice,
		event.TicketQuantity,
		event.CoverImagePath,
		marshalGallery(event.GalleryImagePaths),
		event.EventType,
	)

	if err != nil {
		r.logger.Error("Etkinlik oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("etkinlik oluşturulamadı: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("etkinlik kimliği alınamadı: %w", err)
	}
	event.ID = id

	return nil
}

func (r *EventRepository) Update(event *domain.Event) error {
	query := `
		UPDATE events
		SET title = ?, date = ?, timestamp = ?, location = ?, description = ?, status = ?,
			ticket_price = ?, ticket_quantity = ?, cover_image_path = ?, gallery_image_paths = ?, event_type = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(
		query,
		event.Title,
		event.Date,
		event.Timestamp,
		event.Location,
		event.Description,
		event.Status,
		event.TicketPrice,
		event.TicketQuantity,
		event.CoverImagePath,
		marshalGallery(event.GalleryImagePaths),
		event.EventType,
		event.ID,
	)

	if err != nil {
		r.logger.Error("Etkinlik güncellenemedi", map[string]interface{}{"id": event.ID, "error": err.Error()})
		return fmt.Errorf("etkinlik güncellenemedi: %w", err)
	}

	return nil
}

func (r *EventRepository) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM events WHERE id = ?`, id)

	if err != nil {
		r.logger.Error("Etkinlik silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("etkinlik silinemedi: %w", err)
	}

	return nil
}

func (r *EventRepository) FindByID(id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`

	event, err := r.scanOne(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Etkinlik ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("etkinlik bulunamadı: %w", err)
	}

	return event, nil
}

func (r *EventRepository) FindAll() ([]*domain.Event, error) {
	return r.query(`SELECT `+eventColumns+` FROM events`+eventOrder, nil)
}

func (r *EventRepository) FindByStatus(status string) ([]*domain.Event, error) {
	return r.query(`SELECT `+eventColumns+` FROM events WHERE status = ?`+eventOrder, []interface{}{status})
}

// Search, yalnızca set edilmiş filtreler için koşul üretir; nil alan
// "hepsiyle eşleş" demektir, boş string ile karıştırılmaz.
func (r *EventRepository) Search(filter domain.EventFilter) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events`
	var clauses []string
	var args []interface{}

	if filter.Title != nil {
		clauses = append(clauses, `LOWER(title) LIKE ?`)
		args = append(args, "%"+strings.ToLower(*filter.Title)+"%")
	}
	if filter.Location != nil {
		clauses = append(clauses, `LOWER(location) LIKE ?`)
		args = append(args, "%"+strings.ToLower(*filter.Location)+"%")
	}
	if filter.MinTimestamp != nil {
		clauses = append(clauses, `timestamp >= ?`)
		args = append(args, *filter.MinTimestamp)
	}
	if filter.MaxTimestamp != nil {
		clauses = append(clauses, `timestamp <= ?`)
		args = append(args, *filter.MaxTimestamp)
	}

	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, ` AND `)
	}
	query += eventOrder

	return r.query(query, args)
}

func (r *EventRepository) CountByStatus(status string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM events WHERE status = ?`, status).Scan(&count)
	if err != nil {
		r.logger.Error("Etkinlik sayısı alınamadı", map[string]interface{}{"status": status, "error": err.Error()})
		return 0, fmt.Errorf("etkinlik sayısı alınamadı: %w", err)
	}
	return count, nil
}

// Eski satırların türetilmiş zaman damgası geriye dönük doldurulur.
func (r *EventRepository) FindWithZeroTimestamp() ([]*domain.Event, error) {
	return r.query(`SELECT `+eventColumns+` FROM events WHERE timestamp = 0 AND date IS NOT NULL AND date != ''`, nil)
}

func (r *EventRepository) UpdateTimestamp(id int64, timestamp int64) error {
	_, err := r.db.Exec(`UPDATE events SET timestamp = ? WHERE id = ?`, timestamp, id)
	if err != nil {
		r.logger.Error("Etkinlik zaman damgası güncellenemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("etkinlik zaman damgası güncellenemedi: %w", err)
	}
	return nil
}

func (r *EventRepository) query(query string, args []interface{}) ([]*domain.Event, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Etkinlikler listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("etkinlikler listelenemedi: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("etkinlik satırı okunamadı: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *EventRepository) scanOne(row rowScanner) (*domain.Event, error) {
	var event domain.Event
	var gallery string

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Date,
		&event.Timestamp,
		&event.Location,
		&event.Description,
		&event.Status,
		&event.TicketPrice,
		&event.TicketQuantity,
		&event.CoverImagePath,
		&gallery,
		&event.EventType,
	)
	if err != nil {
		return nil, err
	}

	event.GalleryImagePaths = unmarshalGallery(gallery)
	return &event, nil
}

func marshalGallery(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	data, err := json.Marshal(paths)
	if err != nil {
		return ""
	}
	return string(data)
}

func unmarshalGallery(raw string) []string {
	if raw == "" {
		return nil
	}
	var paths []string
	if err := json.Unmarshal([]byte(raw), &paths); err != nil {
		return nil
	}
	return paths
}
