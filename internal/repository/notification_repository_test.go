package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"eventhive/internal/domain"
	"eventhive/internal/repository"
)

func TestNotificationListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	log := testLogger()
	users := repository.NewUserRepository(db, log)
	repo := repository.NewNotificationRepository(db, log)

	user := &domain.User{FirstName: "Ayşe", Email: "ayse@ornek.com"}
	require.NoError(t, users.Create(user))

	old := &domain.Notification{Title: "Eski", Timestamp: 1000, UserID: user.ID}
	fresh := &domain.Notification{Title: "Yeni", Timestamp: 2000, UserID: user.ID}
	require.NoError(t, repo.Create(old))
	require.NoError(t, repo.Create(fresh))

	notifications, err := repo.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	require.Equal(t, "Yeni", notifications[0].Title)
	require.Equal(t, "Eski", notifications[1].Title)
	require.False(t, notifications[0].IsRead)
}

func TestNotificationReadFlags(t *testing.T) {
	db := newTestDB(t)
	log := testLogger()
	users := repository.NewUserRepository(db, log)
	repo := repository.NewNotificationRepository(db, log)

	user := &domain.User{FirstName: "Ayşe", Email: "ayse@ornek.com"}
	require.NoError(t, users.Create(user))

	first := &domain.Notification{Title: "Bir", UserID: user.ID}
	second := &domain.Notification{Title: "Iki", UserID: user.ID}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	count, err := repo.CountUnread(user.ID)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	require.NoError(t, repo.MarkRead(first.ID))

	count, err = repo.CountUnread(user.ID)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	notifications, err := repo.ListForUser(user.ID)
	require.NoError(t, err)
	for _, n := range notifications {
		if n.ID == first.ID {
			require.True(t, n.IsRead)
		}
	}

	require.NoError(t, repo.MarkAllRead(user.ID))

	count, err = repo.CountUnread(user.ID)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestNotificationMarkReadMissing(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewNotificationRepository(db, testLogger())

	require.ErrorIs(t, repo.MarkRead(12345), domain.ErrNotificationNotFound)
}
