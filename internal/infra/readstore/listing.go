package readstore

import (
	"context"

	"stay-booking/internal/infra"
	"stay-booking/internal/infra/db"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const listingViewSelect = `
SELECT l.id, l.owner_id, u.first_name || ' ' || u.last_name,
       l.title, l.description, l.price_per_night_cents, l.latitude, l.longitude,
       COALESCE(AVG(r.rating), 0)::float8, COUNT(r.id)::int4,
       l.created_at, l.updated_at
FROM listings l
JOIN users u ON u.id = l.owner_id
LEFT JOIN reviews r ON r.listing_id = l.id`

const (
	findListingViewSQL = listingViewSelect + `
WHERE l.id = $1
GROUP BY l.id, u.first_name, u.last_name`

	listListingViewsSQL = listingViewSelect + `
WHERE ($1::uuid IS NULL OR l.owner_id = $1)
  AND ($2::bigint IS NULL OR l.price_per_night_cents <= $2)
  AND ($3::timestamptz IS NULL OR (l.created_at, l.id) < ($3, $4::uuid))
GROUP BY l.id, u.first_name, u.last_name
ORDER BY l.created_at DESC, l.id DESC
LIMIT $5`
)

type ListingReadStore struct {
	db db.DBTX
}

func NewListingReadStore(dbtx db.DBTX) *ListingReadStore {
	return &ListingReadStore{db: dbtx}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	v, err := scanListingView(r.db.QueryRow(ctx, findListingViewSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get listing view", err)
	}
	return v, nil
}

func (r *ListingReadStore) List(ctx context.Context, filters queries.ListingFilters, after *queries.PageKey, limit int32) ([]*queries.ListingView, error) {
	owner := pgtype.UUID{}
	if filters.OwnerID != nil {
		owner = pgtype.UUID{Bytes: [16]byte(*filters.OwnerID), Valid: true}
	}
	afterAt, afterID := keysetArgs(after)

	rows, err := r.db.Query(ctx, listListingViewsSQL,
		owner, pgconv.Int8PtrToPgtype(filters.MaxPriceCents), afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings", err)
	}
	defer rows.Close()

	out := make([]*queries.ListingView, 0, limit)
	for rows.Next() {
		v, err := scanListingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan listing view", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate listings", err)
	}
	return out, nil
}

func scanListingView(row pgx.Row) (*queries.ListingView, error) {
	var v queries.ListingView
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.OwnerName,
		&v.Title, &v.Description, &v.PricePerNightCents, &v.Latitude, &v.Longitude,
		&v.AverageRating, &v.ReviewCount,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
