package repository

import (
	"database/sql"
	"fmt"

	"eventhive/internal/domain"
	"eventhive/pkg/logger"
)

type UserRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewUserRepository(db *sql.DB, logger logger.Logger) domain.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) Create(user *domain.User) error {
	query := `
		INSERT INTO users (first_name, last_name, email, password_hash, role, phone, remote_uid)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if user.Role == "" {
		user.Role = domain.UserRoleStandard
	}

	res, err := r.db.Exec(
		query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Phone,
		user.RemoteUID,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		r.logger.Error("Kullanıcı oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("kullanıcı kimliği alınamadı: %w", err)
	}
	user.ID = id

	return nil
}

func (r *UserRepository) FindByID(id int64) (*domain.User, error) {
	query := `SELECT id, first_name, last_name, email, password_hash, role, phone, COALESCE(remote_uid, '') FROM users WHERE id = ?`

	var user domain.User
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Phone,
		&user.RemoteUID,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kullanıcı ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı bulunamadı: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	query := `SELECT id, first_name, last_name, email, password_hash, role, phone, COALESCE(remote_uid, '') FROM users WHERE email = ?`

	var user domain.User
	err := r.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Phone,
		&user.RemoteUID,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kullanıcı e-posta adresine göre bulunamadı", map[string]interface{}{"email": email, "error": err.Error()})
		return nil, fmt.Errorf("kullanıcı bulunamadı: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) FindAll() ([]*domain.User, error) {
	query := `SELECT id, first_name, last_name, email, password_hash, role, phone, COALESCE(remote_uid, '') FROM users ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Kullanıcılar listelenemedi", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("kullanıcılar listelenemedi: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.Phone,
			&user.RemoteUID,
		); err != nil {
			return nil, fmt.Errorf("kullanıcı satırı okunamadı: %w", err)
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

func (r *UserRepository) Update(user *domain.User) error {
	query := `
		UPDATE users
		SET first_name = ?, last_name = ?, email = ?, password_hash = ?, role = ?, phone = ?, remote_uid = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(
		query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Phone,
		user.RemoteUID,
		user.ID,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		r.logger.Error("Kullanıcı güncellenemedi", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}

	return nil
}

func (r *UserRepository) Delete(id int64) error {
	query := `DELETE FROM users WHERE id = ?`

	_, err := r.db.Exec(query, id)

	if err != nil {
		r.logger.Error("Kullanıcı silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("kullanıcı silinemedi: %w", err)
	}

	return nil
}

func (r *UserRepository) CountByRole(role string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users WHERE role = ?`, role).Scan(&count)
	if err != nil {
		r.logger.Error("Kullanıcı sayısı alınamadı", map[string]interface{}{"role": role, "error": err.Error()})
		return 0, fmt.Errorf("kullanıcı sayısı alınamadı: %w", err)
	}
	return count, nil
}
