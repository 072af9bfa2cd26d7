package repository

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// Benzersiz indeks ihlali; bilet kodu ve e-posta değişmezleri bu
// ihlal üzerinden atomik olarak korunur.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
