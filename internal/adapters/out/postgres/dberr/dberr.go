// Package dberr translates gorm and driver errors into the error kinds of the
// core. Unique violations and serialization failures become Conflict errors,
// every other failure a StorageError that keeps the original cause.
package dberr

import (
	"errors"

	"fastfood/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes reported as conflicts.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// Wrap classifies err raised while performing operation on subject.
// It returns nil for a nil err.
func Wrap(err error, subject string, operation string) error {
	if err == nil {
		return nil
	}

	if IsConflict(err) {
		return errs.NewConflictErrorWithCause(subject, err)
	}

	return errs.NewStorageError(operation+" "+subject, err)
}

// IsConflict reports whether err means a concurrent writer got there first.
func IsConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation, codeSerializationFailure, codeDeadlockDetected:
			return true
		}
	}
	return false
}
