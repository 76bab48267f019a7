package dberr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"fastfood/internal/adapters/out/postgres/dberr"
	"fastfood/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWrap(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantKind errs.Kind
	}{
		{"duplicated key", gorm.ErrDuplicatedKey, errs.KindConflict},
		{"unique violation", &pgconn.PgError{Code: "23505"}, errs.KindConflict},
		{"serialization failure", fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40001"}), errs.KindConflict},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, errs.KindConflict},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, errs.KindStorage},
		{"connection failure", errors.New("connection refused"), errs.KindStorage},
		{"deadline", context.DeadlineExceeded, errs.KindStorage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tc.err, "order", "update")

			require.Error(t, wrapped)
			assert.Equal(t, tc.wantKind, errs.KindOf(wrapped))
			assert.ErrorIs(t, wrapped, tc.err)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	require.NoError(t, dberr.Wrap(nil, "order", "update"))
}

func TestWrap_KeepsDriverDetails(t *testing.T) {
	wrapped := dberr.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "idx_ratings_food_user"}, "rating", "insert")

	var pgErr *pgconn.PgError
	require.ErrorAs(t, wrapped, &pgErr)
	assert.Equal(t, "idx_ratings_food_user", pgErr.ConstraintName)
}
