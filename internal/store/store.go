package store

import (
	"database/sql"
	"errors"

	"reminders-backend/internal/apperrors"

	"github.com/lib/pq"
)

// Store membungkus semua akses database untuk users, lists, tasks, dan tokens.
// Semua query SQL aplikasi ada di package ini, handler tidak boleh
// menyentuh *sql.DB secara langsung.
type Store struct {
	DB *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// wrapErr menerjemahkan error driver ke error domain:
// - sql.ErrNoRows       -> not found
// - pq unique violation -> conflict
// - sisanya             -> internal
func wrapErr(err error, notFoundMsg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.New(apperrors.KindNotFound, notFoundMsg)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return apperrors.Wrap(apperrors.KindConflict, "Duplicate value", err)
	}
	return apperrors.Wrap(apperrors.KindInternal, "Database error", err)
}

// IsConflict mengembalikan true jika err adalah unique violation.
func IsConflict(err error) bool {
	return apperrors.KindOf(err) == apperrors.KindConflict
}
