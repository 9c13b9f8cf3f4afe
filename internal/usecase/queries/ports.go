package queries

import (
	"context"

	"stay-booking/internal/domain/availability"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/queries/ports_mock.go -package=queriesmock

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	List(ctx context.Context, filters ListingFilters, after *PageKey, limit int32) ([]*ListingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByListing(ctx context.Context, listingID uuid.UUID, filters BookingFilters, after *PageKey, limit int32) ([]*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, filters BookingFilters, after *PageKey, limit int32) ([]*BookingView, error)
	// ConfirmedRangesBetween returns confirmed ranges touching window.
	ConfirmedRangesBetween(ctx context.Context, listingID uuid.UUID, window availability.DateRange) ([]availability.DateRange, error)
}

// AmenityReadStore results are ordered by name.
type AmenityReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AmenityView, error)
	List(ctx context.Context) ([]*AmenityView, error)
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]*AmenityView, error)
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByListing(ctx context.Context, listingID uuid.UUID, after *PageKey, limit int32) ([]*ReviewView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *PageKey, limit int32) ([]*ReviewView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context, after *PageKey, limit int32) ([]*UserView, error)
}
