package ticketcode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"eventhive/pkg/ticketcode"
)

func TestGenerateFormat(t *testing.T) {
	code := ticketcode.Generate(42)

	require.True(t, ticketcode.IsValid(code))
	require.True(t, strings.HasPrefix(code, "EVT-42-"))

	parts := strings.Split(code, "-")
	require.Len(t, parts, 4)
	require.Len(t, parts[3], 4)
}

func TestIsValid(t *testing.T) {
	require.True(t, ticketcode.IsValid("EVT-1-1700000000000-4821"))

	require.False(t, ticketcode.IsValid(""))
	require.False(t, ticketcode.IsValid("EVT-1-1700000000000"))
	require.False(t, ticketcode.IsValid("TKT-1-1700000000000-4821"))
	require.False(t, ticketcode.IsValid("EVT-1-1700000000000-482"))
	require.False(t, ticketcode.IsValid("EVT-abc-1700000000000-4821"))
}
