//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"stay-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultPassword is the plain-text password of every fixture user.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	fixtureHash string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.NewHasher(4).Hash(DefaultPassword)
		if err != nil {
			panic(err)
		}
		fixtureHash = h
	})
	return fixtureHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	err := db.QueryRow(context.Background(), `
INSERT INTO users (id, email, password_hash, first_name, last_name, role, is_active)
VALUES ($1, $2, $3, 'Test', 'User', $4, true)
ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING id`,
		id, email, passwordHash(t), role,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func DeactivateUser(t *testing.T, db DBLike, id uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(), `UPDATE users SET is_active = false WHERE id = $1`, id)
	require.NoError(t, err)
}

func CreateTestListing(t *testing.T, db DBLike, ownerID uuid.UUID, title string, priceCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
INSERT INTO listings (id, owner_id, title, description, price_per_night_cents, latitude, longitude)
VALUES ($1, $2, $3, '', $4, 35.68, 139.76)`,
		id, ownerID, title, priceCents,
	)
	require.NoError(t, err)
	return id
}

// CreateTestBooking inserts a booking row directly, bypassing the
// availability check. Dates are YYYY-MM-DD.
func CreateTestBooking(t *testing.T, db DBLike, listingID, guestID uuid.UUID, start, end, status string) uuid.UUID {
	t.Helper()

	s, err := time.Parse(time.DateOnly, start)
	require.NoError(t, err)
	e, err := time.Parse(time.DateOnly, end)
	require.NoError(t, err)

	id := uuid.New()
	_, err = db.Exec(context.Background(), `
INSERT INTO bookings (id, listing_id, guest_id, start_date, end_date, status, total_cents)
VALUES ($1, $2, $3, $4, $5, $6, 10000)`,
		id, listingID, guestID, s, e, status,
	)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	q := "SELECT count(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	require.NoError(t, db.QueryRow(context.Background(), q, args...).Scan(&n))
	return n
}

var (
	truncateOnce sync.Once
	truncateSQL  string
	truncateErr  error
)

// ResetDB truncates every public table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
SELECT 'public.' || quote_ident(tablename)
FROM pg_tables
WHERE schemaname = 'public' AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateErr = err
			return
		}
		defer rows.Close()

		var tables []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				truncateErr = err
				return
			}
			tables = append(tables, name)
		}
		if err := rows.Err(); err != nil {
			truncateErr = err
			return
		}
		if len(tables) == 0 {
			truncateSQL = "SELECT 1"
			return
		}
		truncateSQL = "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE"
	})
	if truncateErr != nil {
		return fmt.Errorf("failed to build TRUNCATE SQL: %w", truncateErr)
	}

	_, err := pool.Exec(ctx, truncateSQL)
	return err
}
