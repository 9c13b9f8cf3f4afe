package queries

import (
	"context"
	"time"

	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrListingNotFound = errs.New("listing not found")

//go:generate mockgen -source=listing.go -destination=../../../tests/mock/queries/listing_mock.go -package=queriesmock

type ListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	List(ctx context.Context, filters ListingFilters, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error)
}

type listingQueriesImpl struct {
	store ListingReadStore
}

func NewListingQueries(store ListingReadStore) ListingQueries {
	return &listingQueriesImpl{store: store}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *listingQueriesImpl) List(ctx context.Context, filters ListingFilters, cursor *Cursor, limit int) ([]*ListingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodePageKey(cursor)
	if err != nil {
		return nil, nil, err
	}

	rows, err := q.store.List(ctx, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := trimPage(rows, limit, listingKey)
	return page, next, nil
}

func listingKey(v *ListingView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }
