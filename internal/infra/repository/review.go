package repository

import (
	"context"

	"stay-booking/internal/domain/review"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/db"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	insertReviewSQL = `
INSERT INTO reviews (id, listing_id, user_id, rating, comment, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	updateReviewSQL = `
UPDATE reviews SET rating = $2, comment = $3, updated_at = $4
WHERE id = $1`

	deleteReviewSQL = `DELETE FROM reviews WHERE id = $1`

	lockReviewSQL = `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1 FOR UPDATE`
)

type ReviewRepository struct {
	db db.DBTX
}

func NewReviewRepository(dbtx db.DBTX) *ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

// Create reports KindDuplicateKey when the user already reviewed the listing.
func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	_, err := r.db.Exec(ctx, insertReviewSQL,
		rev.ID(), rev.ListingID(), rev.UserID(),
		int16(rev.Rating().Value()), rev.Comment().String(),
		rev.CreatedAt(), rev.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	tag, err := r.db.Exec(ctx, updateReviewSQL,
		rev.ID(), int16(rev.Rating().Value()), rev.Comment().String(), rev.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteReviewSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) LockByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	snap, err := scanReviewSnapshot(r.db.QueryRow(ctx, lockReviewSQL, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock review", err)
	}
	return snap, nil
}
