package shared

import (
	"context"
	"time"

	"stay-booking/internal/domain/amenity"
	"stay-booking/internal/domain/availability"
	"stay-booking/internal/domain/booking"
	"stay-booking/internal/domain/listing"
	"stay-booking/internal/domain/review"
	"stay-booking/internal/domain/user"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one database transaction.
type Tx interface {
	Amenities() AmenityRepository
	Bookings() BookingRepository
	Listings() ListingRepository
	Reviews() ReviewRepository
	Users() UserRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	HasReviewed(ctx context.Context, listingID, userID uuid.UUID) (bool, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	// LockByID loads the booking with a row lock held until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// ConfirmedRanges returns the confirmed ranges of a listing, skipping excludeID.
	ConfirmedRanges(ctx context.Context, listingID, excludeID uuid.UUID) ([]availability.DateRange, error)
}

type ListingRepository interface {
	Create(ctx context.Context, l *listing.Listing) error
	Update(ctx context.Context, l *listing.Listing) error
	// LockByID serialises writers that decide on the listing's calendar.
	LockByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
	Update(ctx context.Context, r *review.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	LockByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
}

type AmenityRepository interface {
	Create(ctx context.Context, a *amenity.Amenity) error
	Update(ctx context.Context, a *amenity.Amenity) error
	Delete(ctx context.Context, id uuid.UUID) error
	LockByID(ctx context.Context, id uuid.UUID) (*AmenitySnapshot, error)
	// ReplaceForListing swaps the listing's amenity set for ids.
	ReplaceForListing(ctx context.Context, listingID uuid.UUID, ids []uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Save(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
