package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"eventhive/internal/domain"
	"eventhive/pkg/logger"
)

const ticketColumns = `id, user_id, event_id, unique_code, purchase_timestamp,
	COALESCE(event_title, ''), COALESCE(event_date, ''), COALESCE(event_location, '')`

type TicketRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewTicketRepository(db *sql.DB, logger logger.Logger) domain.TicketRepository {
	return &TicketRepository{
		db:     db,
		logger: logger,
	}
}

// Insert, kod çakışmasını benzersiz indeksin reddi üzerinden bildirir;
// çağıran ErrDuplicateTicketCode gördüğünde yeni kod üretip tekrar dener.
func (r *TicketRepository) Insert(ticket *domain.Ticket) error {
	query := `
		INSERT INTO tickets (user_id, event_id, unique_code, purchase_timestamp, event_title, event_date, event_location)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.Exec(
		query,
		ticket.UserID,
		ticket.EventID,
		ticket.UniqueCode,
		ticket.PurchaseTimestamp,
		ticket.EventTitle,
		ticket.EventDate,
		ticket.EventLocation,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateTicketCode
		}
		r.logger.Error("Bilet eklenemedi", map[string]interface{}{"code": ticket.UniqueCode, "error": err.Error()})
		return fmt.Errorf("bilet eklenemedi: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("bilet kimliği alınamadı: %w", err)
	}
	ticket.ID = id

	return nil
}

func (r *TicketRepository) CodeExists(code string) (bool, error) {
	var exists int
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM tickets WHERE unique_code = ? LIMIT 1)`, code).Scan(&exists)
	if err != nil {
		r.logger.Error("Bilet kodu kontrol edilemedi", map[string]interface{}{"code": code, "error": err.Error()})
		return false, fmt.Errorf("bilet kodu kontrol edilemedi: %w", err)
	}
	return exists == 1, nil
}

func (r *TicketRepository) FindByCode(code string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE unique_code = ?`

	var ticket domain.Ticket
	err := r.db.QueryRow(query, code).Scan(
		&ticket.ID,
		&ticket.UserID,
		&ticket.EventID,
		&ticket.UniqueCode,
		&ticket.PurchaseTimestamp,
		&ticket.EventTitle,
		&ticket.EventDate,
		&ticket.EventLocation,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Bilet koda göre bulunamadı", map[string]interface{}{"code": code, "error": err.Error()})
		return nil, fmt.Errorf("bilet bulunamadı: %w", err)
	}

	return &ticket, nil
}

// En son alınan bilet en üstte.
func (r *TicketRepository) ListForUser(userID int64) ([]*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE user_id = ? ORDER BY id DESC`
	return r.query(query, []interface{}{userID})
}

// Search, kullanıcının biletlerini etkinlikle birleştirip başlık/konum
// metni ve etkinlik zaman aralığına göre süzer; nil alan uygulanmaz.
func (r *TicketRepository) Search(filter domain.TicketFilter) ([]*domain.Ticket, error) {
	query := `
		SELECT t.id, t.user_id, t.event_id, t.unique_code, t.purchase_timestamp,
			COALESCE(t.event_title, ''), COALESCE(t.event_date, ''), COALESCE(t.event_location, '')
		FROM tickets t
		INNER JOIN events e ON t.event_id = e.id
		WHERE t.user_id = ?`
	args := []interface{}{filter.UserID}

	var clauses []string
	if filter.Query != nil {
		term := "%" + strings.ToLower(*filter.Query) + "%"
		clauses = append(clauses, `(LOWER(e.title) LIKE ? OR LOWER(e.location) LIKE ?)`)
		args = append(args, term, term)
	}
	if filter.MinTimestamp != nil {
		clauses = append(clauses, `e.timestamp >= ?`)
		args = append(args, *filter.MinTimestamp)
	}
	if filter.MaxTimestamp != nil {
		clauses = append(clauses, `e.timestamp <= ?`)
		args = append(args, *filter.MaxTimestamp)
	}

	if len(clauses) > 0 {
		query += ` AND ` + strings.Join(clauses, ` AND `)
	}
	query += ` ORDER BY t.id DESC`

	return r.query(query, args)
}

func (r *TicketRepository) CountForUser(userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM tickets WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		r.logger.Error("Bilet sayısı alınamadı", map[string]interface{}{"user_id": userID, "error": err.Error()})
		return 0, fmt.Errorf("bilet sayısı alınamadı: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) CountForEvent(eventID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM tickets WHERE event_id = ?`, eventID).Scan(&count)
	if err != nil {
		r.logger.Error("Bilet sayısı alınamadı", map[string]interface{}{"event_id": eventID, "error": err.Error()})
		return 0, fmt.Errorf("bilet sayısı alınamadı: %w", err)
	}
	return count, nil
}

// Etkinliğin bilet sahipleri, durum değişikliği bildirimleri için.
func (r *TicketRepository) ListHolderIDs(eventID int64) ([]int64, error) {
	rows, err := r.db.Query(`SELECT DISTINCT user_id FROM tickets WHERE event_id = ?`, eventID)
	if err != nil {
		r.logger.Error("Bilet sahipleri listelenemedi", map[string]interface{}{"event_id": eventID, "error": err.Error()})
		return nil, fmt.Errorf("bilet sahipleri listelenemedi: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("bilet sahibi satırı okunamadı: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *TicketRepository) query(query string, args []interface{}) ([]*domain.Ticket, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Error("Biletler listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("biletler listelenemedi: %w", err)
	}
	defer rows.Close()

	var tickets []*domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.ID,
			&ticket.UserID,
			&ticket.EventID,
			&ticket.UniqueCode,
			&ticket.PurchaseTimestamp,
			&ticket.EventTitle,
			&ticket.EventDate,
			&ticket.EventLocation,
		); err != nil {
			return nil, fmt.Errorf("bilet satırı okunamadı: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	return tickets, rows.Err()
}
