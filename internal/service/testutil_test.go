package service_test

import (
	"database/sql"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eventhive/internal/concurrent"
	"eventhive/internal/database"
	"eventhive/internal/domain"
	"eventhive/internal/repository"
	"eventhive/internal/service"
	"eventhive/pkg/logger"
)

type fixture struct {
	db     *sql.DB
	writer *concurrent.Writer

	userRepo         domain.UserRepository
	eventRepo        domain.EventRepository
	ticketRepo       domain.TicketRepository
	notificationRepo domain.NotificationRepository

	users         domain.UserService
	events        domain.EventService
	tickets       domain.TicketService
	notifications domain.NotificationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logger.New(logger.ErrorLevel, io.Discard)

	db, err := database.Open(filepath.Join(t.TempDir(), "eventhive_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = database.NewMigrator(db, log, false).Run()
	require.NoError(t, err)

	writer := concurrent.NewWriter(256, log)
	writer.Start()
	t.Cleanup(writer.Stop)

	f := &fixture{
		db:               db,
		writer:           writer,
		userRepo:         repository.NewUserRepository(db, log),
		eventRepo:        repository.NewEventRepository(db, log),
		ticketRepo:       repository.NewTicketRepository(db, log),
		notificationRepo: repository.NewNotificationRepository(db, log),
	}
	f.users = service.NewUserService(f.userRepo, writer, log)
	f.events = service.NewEventService(f.eventRepo, f.ticketRepo, f.notificationRepo, writer, log)
	f.tickets = service.NewTicketService(f.ticketRepo, f.userRepo, f.eventRepo, f.notificationRepo, writer, log)
	f.notifications = service.NewNotificationService(f.notificationRepo, writer, log)
	return f
}

const callbackTimeout = 5 * time.Second

// Asenkron bir servis çağrısının callback sonucunu bekler.
func await[T any](t *testing.T, start func(cb domain.Callback[T])) (T, error) {
	t.Helper()

	type outcome struct {
		value T
		err   error
	}
	ch := make(chan outcome, 1)

	start(func(value T, err error) {
		ch <- outcome{value: value, err: err}
	})

	select {
	case o := <-ch:
		return o.value, o.err
	case <-time.After(callbackTimeout):
		t.Fatal("callback zaman aşımına uğradı")
		panic("unreachable")
	}
}

func awaitDone(t *testing.T, start func(cb domain.DoneFunc)) error {
	t.Helper()

	ch := make(chan error, 1)
	start(func(err error) {
		ch <- err
	})

	select {
	case err := <-ch:
		return err
	case <-time.After(callbackTimeout):
		t.Fatal("callback zaman aşımına uğradı")
		panic("unreachable")
	}
}

func ptr[T any](v T) *T {
	return &v
}
