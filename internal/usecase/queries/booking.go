package queries

import (
	"context"
	"time"

	"stay-booking/internal/domain/user"
	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

type BookingQueries interface {
	// GetByID is visible to the guest, the listing owner and admins.
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error)
	// ListByListing is reserved for the listing owner and admins.
	ListByListing(ctx context.Context, actorID uuid.UUID, actorRole user.Role, listingID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListMine(ctx context.Context, guestID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	listings ListingReadStore
}

func NewBookingQueries(bookings BookingReadStore, listings ListingReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, listings: listings}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error) {
	v, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if actorRole != user.RoleAdmin && v.GuestID != actorID && v.OwnerID != actorID {
		return nil, ErrBookingAccess
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListByListing(ctx context.Context, actorID uuid.UUID, actorRole user.Role, listingID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	l, err := q.listings.FindByID(ctx, listingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrListingNotFound
		}
		return nil, nil, err
	}
	if actorRole != user.RoleAdmin && l.OwnerID != actorID {
		return nil, nil, ErrBookingAccess
	}

	limit = ValidateLimit(limit)
	after, err := decodePageKey(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.bookings.ListByListing(ctx, listingID, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := trimPage(rows, limit, bookingKey)
	return page, next, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, guestID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodePageKey(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.bookings.ListByGuest(ctx, guestID, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := trimPage(rows, limit, bookingKey)
	return page, next, nil
}

func bookingKey(v *BookingView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }
