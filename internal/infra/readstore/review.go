package readstore

import (
	"context"

	"stay-booking/internal/infra"
	"stay-booking/internal/infra/db"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reviewViewSelect = `
SELECT r.id, r.listing_id, r.user_id, u.first_name || ' ' || u.last_name,
       r.rating, r.comment, r.created_at, r.updated_at
FROM reviews r
JOIN users u ON u.id = r.user_id`

const (
	findReviewViewSQL = reviewViewSelect + `
WHERE r.id = $1`

	listReviewsByListingSQL = reviewViewSelect + `
WHERE r.listing_id = $1
  AND ($2::timestamptz IS NULL OR (r.created_at, r.id) < ($2, $3::uuid))
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

	listReviewsByUserSQL = reviewViewSelect + `
WHERE r.user_id = $1
  AND ($2::timestamptz IS NULL OR (r.created_at, r.id) < ($2, $3::uuid))
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	v, err := scanReviewView(r.db.QueryRow(ctx, findReviewViewSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view", err)
	}
	return v, nil
}

func (r *ReviewReadStore) ListByListing(ctx context.Context, listingID uuid.UUID, after *queries.PageKey, limit int32) ([]*queries.ReviewView, error) {
	return r.list(ctx, listReviewsByListingSQL, listingID, after, limit)
}

func (r *ReviewReadStore) ListByUser(ctx context.Context, userID uuid.UUID, after *queries.PageKey, limit int32) ([]*queries.ReviewView, error) {
	return r.list(ctx, listReviewsByUserSQL, userID, after, limit)
}

func (r *ReviewReadStore) list(ctx context.Context, sql string, id uuid.UUID, after *queries.PageKey, limit int32) ([]*queries.ReviewView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, sql, id, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	out := make([]*queries.ReviewView, 0, limit)
	for rows.Next() {
		v, err := scanReviewView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reviews", err)
	}
	return out, nil
}

func scanReviewView(row pgx.Row) (*queries.ReviewView, error) {
	var v queries.ReviewView
	err := row.Scan(&v.ID, &v.ListingID, &v.UserID, &v.UserName, &v.Rating, &v.Comment, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
