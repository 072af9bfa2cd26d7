package password_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"eventhive/pkg/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("gizli-sifre")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "gizli-sifre", hash)

	require.True(t, password.Verify(hash, "gizli-sifre"))
	require.False(t, password.Verify(hash, "yanlis-sifre"))
	require.False(t, password.Verify("", "gizli-sifre"))
}

func TestHashUsesRandomSalt(t *testing.T) {
	first, err := password.Hash("ayni-sifre")
	require.NoError(t, err)

	second, err := password.Hash("ayni-sifre")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, password.Verify(first, "ayni-sifre"))
	require.True(t, password.Verify(second, "ayni-sifre"))
}
