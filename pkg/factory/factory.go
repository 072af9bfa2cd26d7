package factory

import (
	"database/sql"
	"errors"
	"fmt"

	"eventhive/internal/auth"
	"eventhive/internal/concurrent"
	"eventhive/internal/config"
	"eventhive/internal/database"
	"eventhive/internal/domain"
	"eventhive/internal/repository"
	"eventhive/internal/service"
	"eventhive/pkg/blobstore"
	"eventhive/pkg/logger"
)

type Factory interface {
	GetLogger() logger.Logger
	GetConfig() *config.Config
	GetDB() *sql.DB
	GetWriter() *concurrent.Writer
	GetBlobStore() *blobstore.Store
	GetSessionManager() *auth.SessionManager

	GetUserRepository() domain.UserRepository
	GetEventRepository() domain.EventRepository
	GetTicketRepository() domain.TicketRepository
	GetNotificationRepository() domain.NotificationRepository

	GetUserService() domain.UserService
	GetEventService() domain.EventService
	GetTicketService() domain.TicketService
	GetNotificationService() domain.NotificationService

	DataReset() bool
	Close() error
}

type AppFactory struct {
	config         *config.Config
	logger         logger.Logger
	db             *sql.DB
	writer         *concurrent.Writer
	blobStore      *blobstore.Store
	sessionManager *auth.SessionManager
	dataReset      bool

	userRepository         domain.UserRepository
	eventRepository        domain.EventRepository
	ticketRepository       domain.TicketRepository
	notificationRepository domain.NotificationRepository

	userService         domain.UserService
	eventService        domain.EventService
	ticketService       domain.TicketService
	notificationService domain.NotificationService
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewFactoryWithConfig(cfg)
}

func NewFactoryWithConfig(cfg *config.Config) (Factory, error) {
	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("depo açılamadı: %w", err)
	}

	migrator := database.NewMigrator(db, log, cfg.Database.Seed)
	result, err := migrator.Run()
	// Yıkıcı yeniden oluşturma depoyu kullanılabilir bırakır; veri kaybı
	// bayrakla raporlanır, açılış durdurulmaz.
	if err != nil && !errors.Is(err, domain.ErrDataReset) {
		db.Close()
		return nil, fmt.Errorf("şema geçişi başarısız: %w", err)
	}

	writer := concurrent.NewWriter(cfg.Writer.QueueSize, log)
	writer.Start()

	factory := &AppFactory{
		config:         cfg,
		logger:         log,
		db:             db,
		writer:         writer,
		blobStore:      blobstore.New(cfg.Blob.Dir, log),
		sessionManager: auth.NewSessionManager(),
		dataReset:      result.DataReset,
	}

	factory.initRepositories()
	factory.initServices()

	return factory, nil
}

func (f *AppFactory) initRepositories() {
	f.userRepository = repository.NewUserRepository(f.db, f.logger)
	f.eventRepository = repository.NewEventRepository(f.db, f.logger)
	f.ticketRepository = repository.NewTicketRepository(f.db, f.logger)
	f.notificationRepository = repository.NewNotificationRepository(f.db, f.logger)
}

func (f *AppFactory) initServices() {
	f.userService = service.NewUserService(f.userRepository, f.writer, f.logger)

	f.notificationService = service.NewNotificationService(f.notificationRepository, f.writer, f.logger)

	f.eventService = service.NewEventService(
		f.eventRepository,
		f.ticketRepository,
		f.notificationRepository,
		f.writer,
		f.logger,
	)

	f.ticketService = service.NewTicketService(
		f.ticketRepository,
		f.userRepository,
		f.eventRepository,
		f.notificationRepository,
		f.writer,
		f.logger,
	)
}

func (f *AppFactory) GetLogger() logger.Logger {
	return f.logger
}

func (f *AppFactory) GetConfig() *config.Config {
	return f.config
}

func (f *AppFactory) GetDB() *sql.DB {
	return f.db
}

func (f *AppFactory) GetWriter() *concurrent.Writer {
	return f.writer
}

func (f *AppFactory) GetBlobStore() *blobstore.Store {
	return f.blobStore
}

func (f *AppFactory) GetSessionManager() *auth.SessionManager {
	return f.sessionManager
}

func (f *AppFactory) GetUserRepository() domain.UserRepository {
	return f.userRepository
}

func (f *AppFactory) GetEventRepository() domain.EventRepository {
	return f.eventRepository
}

func (f *AppFactory) GetTicketRepository() domain.TicketRepository {
	return f.ticketRepository
}

func (f *AppFactory) GetNotificationRepository() domain.NotificationRepository {
	return f.notificationRepository
}

func (f *AppFactory) GetUserService() domain.UserService {
	return f.userService
}

func (f *AppFactory) GetEventService() domain.EventService {
	return f.eventService
}

func (f *AppFactory) GetTicketService() domain.TicketService {
	return f.ticketService
}

func (f *AppFactory) GetNotificationService() domain.NotificationService {
	return f.notificationService
}

// DataReset, açılış sırasındaki şema geçişinin yıkıcı yoldan geçip
// geçmediğini bildirir; arayüz kullanıcıyı bu bayrakla uyarabilir.
func (f *AppFactory) DataReset() bool {
	return f.dataReset
}

func (f *AppFactory) Close() error {
	f.writer.Stop()
	return f.db.Close()
}
