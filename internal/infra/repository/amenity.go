package repository

import (
	"context"

	"stay-booking/internal/domain/amenity"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/db"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertAmenitySQL = `
INSERT INTO amenities (id, name, created_at, updated_at)
VALUES ($1, $2, $3, $4)`

	updateAmenitySQL = `UPDATE amenities SET name = $2, updated_at = $3 WHERE id = $1`

	deleteAmenitySQL = `DELETE FROM amenities WHERE id = $1`

	lockAmenitySQL = `SELECT ` + amenityColumns + ` FROM amenities WHERE id = $1 FOR UPDATE`

	clearListingAmenitiesSQL = `DELETE FROM listing_amenities WHERE listing_id = $1`

	linkListingAmenitiesSQL = `
INSERT INTO listing_amenities (listing_id, amenity_id)
SELECT $1, unnest($2::uuid[])`
)

type AmenityRepository struct {
	db db.DBTX
}

func NewAmenityRepository(dbtx db.DBTX) *AmenityRepository {
	return &AmenityRepository{db: dbtx}
}

// Create reports KindDuplicateKey when the name is taken, ignoring case.
func (r *AmenityRepository) Create(ctx context.Context, a *amenity.Amenity) error {
	_, err := r.db.Exec(ctx, insertAmenitySQL, a.ID(), a.Name().String(), a.CreatedAt(), a.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create amenity", err)
	}
	return nil
}

func (r *AmenityRepository) Update(ctx context.Context, a *amenity.Amenity) error {
	tag, err := r.db.Exec(ctx, updateAmenitySQL, a.ID(), a.Name().String(), a.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update amenity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("amenity not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AmenityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteAmenitySQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete amenity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("amenity not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AmenityRepository) LockByID(ctx context.Context, id uuid.UUID) (*shared.AmenitySnapshot, error) {
	snap, err := scanAmenitySnapshot(r.db.QueryRow(ctx, lockAmenitySQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock amenity", err)
	}
	return snap, nil
}

// ReplaceForListing reports KindForeignKeyViolated when an id names no amenity.
func (r *AmenityRepository) ReplaceForListing(ctx context.Context, listingID uuid.UUID, ids []uuid.UUID) error {
	if _, err := r.db.Exec(ctx, clearListingAmenitiesSQL, listingID); err != nil {
		return infra.WrapRepoErr("failed to clear listing amenities", err)
	}
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, linkListingAmenitiesSQL, listingID, ids); err != nil {
		return infra.WrapRepoErr("failed to link listing amenities", err)
	}
	return nil
}
