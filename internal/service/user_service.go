package service

import (
	"fmt"
	"strings"

	"eventhive/internal/concurrent"
	"eventhive/internal/domain"
	"eventhive/pkg/logger"
	"eventhive/pkg/password"
)

const minPasswordLength = 6

type UserService struct {
	userRepo domain.UserRepository
	writer   *concurrent.Writer
	logger   logger.Logger
}

func NewUserService(userRepo domain.UserRepository, writer *concurrent.Writer, logger logger.Logger) domain.UserService {
	return &UserService{
		userRepo: userRepo,
		writer:   writer,
		logger:   logger,
	}
}

// Register asenkron çalışır; sonuç yeni kullanıcı kimliğiyle callback
// üzerinden döner. E-posta çakışması ErrEmailTaken olarak iletilir.
func (s *UserService) Register(user *domain.User, plainPassword string, cb domain.Callback[int64]) {
	ok := s.writer.Submit("user_register", func() error {
		id, err := s.register(user, plainPassword)
		if cb != nil {
			cb(id, err)
		}
		return err
	})
	if !ok && cb != nil {
		cb(0, domain.ErrWriterBusy)
	}
}

func (s *UserService) register(user *domain.User, plainPassword string) (int64, error) {
	if err := validateRegistration(user, plainPassword); err != nil {
		return 0, err
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		s.logger.Error("Şifre özetlenemedi", map[string]interface{}{"error": err.Error()})
		return 0, fmt.Errorf("şifre özetlenemedi: %w", err)
	}
	user.PasswordHash = hash

	if err := s.userRepo.Create(user); err != nil {
		return 0, err
	}

	s.logger.Info("Kullanıcı kaydedildi", map[string]interface{}{"id": user.ID, "email": user.Email})
	return user.ID, nil
}

func validateRegistration(user *domain.User, plainPassword string) error {
	if strings.TrimSpace(user.FirstName) == "" {
		return fmt.Errorf("%w: ad boş olamaz", domain.ErrValidation)
	}
	if !isValidEmail(user.Email) {
		return fmt.Errorf("%w: geçersiz e-posta adresi", domain.ErrValidation)
	}
	if len(plainPassword) < minPasswordLength {
		return fmt.Errorf("%w: şifre en az %d karakter olmalı", domain.ErrValidation, minPasswordLength)
	}
	return nil
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

// Login senkron çalışır; başarısızlık sebebi ayırt edilmez, hem
// bilinmeyen e-posta hem yanlış şifre ErrInvalidCredentials döner.
func (s *UserService) Login(email, plainPassword string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(user.PasswordHash, plainPassword) {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info("Kullanıcı giriş yaptı", map[string]interface{}{"id": user.ID})
	return user, nil
}

func (s *UserService) GetUserByID(id int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetAllUsers() ([]*domain.User, error) {
	return s.userRepo.FindAll()
}

func (s *UserService) UpdateUser(user *domain.User, cb domain.DoneFunc) {
	ok := s.writer.Submit("user_update", func() error {
		err := s.updateUser(user)
		if cb != nil {
			cb(err)
		}
		return err
	})
	if !ok && cb != nil {
		cb(domain.ErrWriterBusy)
	}
}

func (s *UserService) updateUser(user *domain.User) error {
	existing, err := s.userRepo.FindByID(user.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrUserNotFound
	}
	if !isValidEmail(user.Email) {
		return fmt.Errorf("%w: geçersiz e-posta adresi", domain.ErrValidation)
	}
	if user.PasswordHash == "" {
		user.PasswordHash = existing.PasswordHash
	}
	return s.userRepo.Update(user)
}

// Silme, biletleri ve bildirimleri yabancı anahtar kaskadıyla götürür.
func (s *UserService) DeleteUser(id int64, cb domain.DoneFunc) {
	ok := s.writer.Submit("user_delete", func() error {
		err := s.deleteUser(id)
		if cb != nil {
			cb(err)
		}
		return err
	})
	if !ok && cb != nil {
		cb(domain.ErrWriterBusy)
	}
}

func (s *UserService) deleteUser(id int64) error {
	existing, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrUserNotFound
	}
	if err := s.userRepo.Delete(id); err != nil {
		return err
	}
	s.logger.Info("Kullanıcı silindi", map[string]interface{}{"id": id})
	return nil
}

func (s *UserService) CountByRole(role string) (int, error) {
	return s.userRepo.CountByRole(role)
}
