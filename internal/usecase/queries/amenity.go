package queries

import (
	"context"

	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAmenityNotFound = errs.New("amenity not found")

//go:generate mockgen -source=amenity.go -destination=../../../tests/mock/queries/amenity_mock.go -package=queriesmock

type AmenityQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AmenityView, error)
	List(ctx context.Context) ([]*AmenityView, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]*AmenityView, error)
}

type amenityQueriesImpl struct {
	amenities AmenityReadStore
	listings  ListingQueries
}

func NewAmenityQueries(amenities AmenityReadStore, listings ListingQueries) AmenityQueries {
	return &amenityQueriesImpl{amenities: amenities, listings: listings}
}

func (q *amenityQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AmenityView, error) {
	v, err := q.amenities.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAmenityNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *amenityQueriesImpl) List(ctx context.Context) ([]*AmenityView, error) {
	return q.amenities.List(ctx)
}

// ListByListing answers ErrListingNotFound for unknown listings rather than
// an empty list.
func (q *amenityQueriesImpl) ListByListing(ctx context.Context, listingID uuid.UUID) ([]*AmenityView, error) {
	if _, err := q.listings.GetByID(ctx, listingID); err != nil {
		return nil, err
	}
	return q.amenities.ListByListing(ctx, listingID)
}
