package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"eventhive/internal/auth"
)

func TestSessionLifecycle(t *testing.T) {
	manager := auth.NewSessionManager()

	require.False(t, manager.IsLoggedIn())

	_, ok := manager.Current()
	require.False(t, ok)

	manager.SetSession(auth.Session{
		UID:       "uid-123",
		Email:     "ayse@ornek.com",
		FirstName: "Ayşe",
		Role:      "Standard",
	})

	require.True(t, manager.IsLoggedIn())

	session, ok := manager.Current()
	require.True(t, ok)
	require.Equal(t, "uid-123", session.UID)
	require.Equal(t, "ayse@ornek.com", session.Email)

	// dönen kopya üzerindeki değişiklik oturumu etkilemez
	session.Email = "degisti@ornek.com"
	current, _ := manager.Current()
	require.Equal(t, "ayse@ornek.com", current.Email)

	manager.Clear()
	require.False(t, manager.IsLoggedIn())
}
