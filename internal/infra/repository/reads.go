package repository

import (
	"context"

	"stay-booking/internal/infra"
	"stay-booking/internal/infra/db"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	listingByIDSQL = `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	bookingByIDSQL = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	userByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	userByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	hasReviewedSQL = `SELECT EXISTS (SELECT 1 FROM reviews WHERE listing_id = $1 AND user_id = $2)`
)

// CommandReads loads write-side snapshots without taking locks.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) ListingByID(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	snap, err := scanListingSnapshot(r.db.QueryRow(ctx, listingByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}
	return snap, nil
}

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	snap, err := scanBookingSnapshot(r.db.QueryRow(ctx, bookingByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return snap, nil
}

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	snap, err := scanUserSnapshot(r.db.QueryRow(ctx, userByIDSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return snap, nil
}

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	snap, err := scanUserSnapshot(r.db.QueryRow(ctx, userByEmailSQL, email))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return snap, nil
}

func (r *CommandReads) HasReviewed(ctx context.Context, listingID, userID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, hasReviewedSQL, listingID, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check existing review", err)
	}
	return exists, nil
}
