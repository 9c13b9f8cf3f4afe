package repository

import (
	"context"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/domain/booking"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/db"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertBookingSQL = `
INSERT INTO bookings (id, listing_id, guest_id, start_date, end_date, status, total_cents, message, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	updateBookingStatusSQL = `
UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

	lockBookingSQL = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	confirmedRangesSQL = `
SELECT start_date, end_date FROM bookings
WHERE listing_id = $1 AND status = 'confirmed' AND id <> $2
ORDER BY start_date`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, insertBookingSQL,
		b.ID(), b.ListingID(), b.GuestID(),
		pgconv.DateToPgtype(b.Dates().Start()), pgconv.DateToPgtype(b.Dates().End()),
		b.Status().String(), b.Total().Cents(), b.Message().String(),
		b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// UpdateStatus reports KindConflict when the exclusion constraint rejects a
// confirmation that would overlap another confirmed stay.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusSQL, b.ID(), b.Status().String(), b.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) LockByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := scanBookingSnapshot(r.db.QueryRow(ctx, lockBookingSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return snap, nil
}

func (r *BookingRepository) ConfirmedRanges(ctx context.Context, listingID, excludeID uuid.UUID) ([]availability.DateRange, error) {
	rows, err := r.db.Query(ctx, confirmedRangesSQL, listingID, excludeID)
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
