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

const (
	findAmenityViewSQL = `
SELECT id, name, created_at, updated_at
FROM amenities
WHERE id = $1`

	listAmenityViewsSQL = `
SELECT id, name, created_at, updated_at
FROM amenities
ORDER BY lower(name), id`

	listListingAmenityViewsSQL = `
SELECT a.id, a.name, a.created_at, a.updated_at
FROM amenities a
JOIN listing_amenities la ON la.amenity_id = a.id
WHERE la.listing_id = $1
ORDER BY lower(a.name), a.id`
)

type AmenityReadStore struct {
	db db.DBTX
}

func NewAmenityReadStore(dbtx db.DBTX) *AmenityReadStore {
	return &AmenityReadStore{db: dbtx}
}

func (r *AmenityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AmenityView, error) {
	v, err := scanAmenityView(r.db.QueryRow(ctx, findAmenityViewSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("amenity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get amenity view", err)
	}
	return v, nil
}

func (r *AmenityReadStore) List(ctx context.Context) ([]*queries.AmenityView, error) {
	return r.list(ctx, listAmenityViewsSQL)
}

func (r *AmenityReadStore) ListByListing(ctx context.Context, listingID uuid.UUID) ([]*queries.AmenityView, error) {
	return r.list(ctx, listListingAmenityViewsSQL, listingID)
}

func (r *AmenityReadStore) list(ctx context.Context, sql string, args ...any) ([]*queries.AmenityView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list amenities", err)
	}
	defer rows.Close()

	out := make([]*queries.AmenityView, 0)
	for rows.Next() {
		v, err := scanAmenityView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan amenity", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate amenities", err)
	}
	return out, nil
}

func scanAmenityView(row pgx.Row) (*queries.AmenityView, error) {
	var v queries.AmenityView
	if err := row.Scan(&v.ID, &v.Name, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
