package repository_test

import (
	"database/sql"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"eventhive/internal/database"
	"eventhive/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.New(logger.ErrorLevel, io.Discard)
}

// Boş, tohumlanmamış bir depo açar ve güncel şemaya taşır.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "eventhive_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = database.NewMigrator(db, testLogger(), false).Run()
	require.NoError(t, err)

	return db
}

func ptr[T any](v T) *T {
	return &v
}
