package repository

import (
	"context"

	"stay-booking/internal/domain/listing"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/db"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertListingSQL = `
INSERT INTO listings (id, owner_id, title, description, price_per_night_cents, latitude, longitude, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	updateListingSQL = `
UPDATE listings
SET title = $2, description = $3, price_per_night_cents = $4, latitude = $5, longitude = $6, updated_at = $7
WHERE id = $1`

	lockListingSQL = `SELECT ` + listingColumns + ` FROM listings WHERE id = $1 FOR UPDATE`
)

type ListingRepository struct {
	db db.DBTX
}

func NewListingRepository(dbtx db.DBTX) *ListingRepository {
	return &ListingRepository{db: dbtx}
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	_, err := r.db.Exec(ctx, insertListingSQL,
		l.ID(), l.OwnerID(), l.Title().String(), l.Description().String(),
		l.Price().Cents(), l.Location().Latitude(), l.Location().Longitude(),
		l.CreatedAt(), l.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create listing", err)
	}
	return nil
}

func (r *ListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	tag, err := r.db.Exec(ctx, updateListingSQL,
		l.ID(), l.Title().String(), l.Description().String(),
		l.Price().Cents(), l.Location().Latitude(), l.Location().Longitude(),
		l.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update listing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ListingRepository) LockByID(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	snap, err := scanListingSnapshot(r.db.QueryRow(ctx, lockListingSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock listing", err)
	}
	return snap, nil
}
