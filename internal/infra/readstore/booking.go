package readstore

import (
	"context"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/db"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingViewSelect = `
SELECT b.id, b.listing_id, l.title, l.owner_id, b.guest_id, g.first_name || ' ' || g.last_name,
       b.start_date, b.end_date, b.status, b.total_cents, b.message, b.created_at, b.updated_at
FROM bookings b
JOIN listings l ON l.id = b.listing_id
JOIN users g ON g.id = b.guest_id`

const (
	findBookingViewSQL = bookingViewSelect + `
WHERE b.id = $1`

	listBookingsByListingSQL = bookingViewSelect + `
WHERE b.listing_id = $1
  AND ($2::text IS NULL OR b.status = $2)
  AND ($3::timestamptz IS NULL OR (b.created_at, b.id) < ($3, $4::uuid))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $5`

	listBookingsByGuestSQL = bookingViewSelect + `
WHERE b.guest_id = $1
  AND ($2::text IS NULL OR b.status = $2)
  AND ($3::timestamptz IS NULL OR (b.created_at, b.id) < ($3, $4::uuid))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $5`

	confirmedRangesBetweenSQL = `
SELECT start_date, end_date FROM bookings
WHERE listing_id = $1 AND status = 'confirmed'
  AND start_date <= $3 AND end_date >= $2
ORDER BY start_date`
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v, err := scanBookingView(r.db.QueryRow(ctx, findBookingViewSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view", err)
	}
	return v, nil
}

func (r *BookingReadStore) ListByListing(ctx context.Context, listingID uuid.UUID, filters queries.BookingFilters, after *queries.PageKey, limit int32) ([]*queries.BookingView, error) {
	return r.list(ctx, listBookingsByListingSQL, listingID, filters, after, limit)
}

func (r *BookingReadStore) ListByGuest(ctx context.Context, guestID uuid.UUID, filters queries.BookingFilters, after *queries.PageKey, limit int32) ([]*queries.BookingView, error) {
	return r.list(ctx, listBookingsByGuestSQL, guestID, filters, after, limit)
}

func (r *BookingReadStore) ConfirmedRangesBetween(ctx context.Context, listingID uuid.UUID, window availability.DateRange) ([]availability.DateRange, error) {
	rows, err := r.db.Query(ctx, confirmedRangesBetweenSQL,
		listingID, pgconv.DateToPgtype(window.Start()), pgconv.DateToPgtype(window.End()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load confirmed ranges", err)
	}
	defer rows.Close()

	var out []availability.DateRange
	for rows.Next() {
		var start, end pgtype.Date
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan confirmed range", err)
		}
		dr, err := pgconv.DateRangeFromPgtype(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid stored date range", err, infra.KindDBFailure)
		}
		out = append(out, dr)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate confirmed ranges", err)
	}
	return out, nil
}

func (r *BookingReadStore) list(ctx context.Context, sql string, id uuid.UUID, filters queries.BookingFilters, after *queries.PageKey, limit int32) ([]*queries.BookingView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, sql, id, pgconv.StringPtrToPgtype(filters.Status), afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	out := make([]*queries.BookingView, 0, limit)
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking view", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return out, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v          queries.BookingView
		start, end pgtype.Date
	)
	err := row.Scan(
		&v.ID, &v.ListingID, &v.ListingTitle, &v.OwnerID, &v.GuestID, &v.GuestName,
		&start, &end, &v.Status, &v.TotalCents, &v.Message, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if v.StartDate, err = pgconv.DateFromPgtype(start); err != nil {
		return nil, err
	}
	if v.EndDate, err = pgconv.DateFromPgtype(end); err != nil {
		return nil, err
	}
	return &v, nil
}
