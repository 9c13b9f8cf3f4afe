//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"stay-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, infra.KindNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), infra.KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, infra.KindDuplicateKey},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated},
		{"exclusion violation", &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_confirmed_overlap"}, infra.KindConflict},
		{"other postgres error", &pgconn.PgError{Code: "40001"}, infra.KindDBFailure},
		{"plain error", errors.New("connection refused"), infra.KindDBFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, infra.Classify(tc.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	t.Run("kind derived from the driver error", func(t *testing.T) {
		err := infra.WrapRepoErr("create booking", &pgconn.PgError{Code: "23P01"})
		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("lock listing", errors.New("boom"), infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("cause stays reachable", func(t *testing.T) {
		err := infra.WrapRepoErr("find user", pgx.ErrNoRows)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
		assert.Contains(t, err.Error(), "NOT_FOUND: find user")
	})

	t.Run("survives further wrapping", func(t *testing.T) {
		err := fmt.Errorf("usecase: %w", infra.WrapRepoErr("create review", &pgconn.PgError{Code: "23505"}))
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("IsKind on foreign errors", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
		assert.False(t, infra.IsKind(nil, infra.KindNotFound))
	})
}
