package booking

import (
	"errors"
	"time"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("booking status can no longer change")
	ErrOwnListing        = errors.New("you cannot book your own listing")
	ErrStartInPast       = errors.New("start date cannot be in the past")
	ErrStayTooLong       = errors.New("stay exceeds the maximum number of nights")
	ErrDatesUnavailable  = errors.New("the selected dates are not available")
	ErrMessageTooLong    = errors.New("message exceeds maximum length")
	ErrNonPositivePrice  = errors.New("price per night must be positive")
)

type ListingTerms struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	PricePerNightCents int64
}

type Policy struct {
	MaxNights int
}

type Services struct {
	Clock  clock.Clock
	Policy Policy
}

type Booking struct {
	id        uuid.UUID
	listingID uuid.UUID
	guestID   uuid.UUID
	dates     availability.DateRange
	status    Status
	total     Money
	message   Message
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(
	services *Services,
	listing ListingTerms,
	guestID uuid.UUID,
	dates availability.DateRange,
	message Message,
) (*Booking, error) {
	if guestID == listing.OwnerID {
		return nil, ErrOwnListing
	}
	if listing.PricePerNightCents <= 0 {
		return nil, ErrNonPositivePrice
	}

	now := services.Clock.Now()
	if dates.Start().Before(clock.Today(services.Clock)) {
		return nil, ErrStartInPast
	}

	cost, err := availability.ComputeStayCost(dates, listing.PricePerNightCents)
	if err != nil {
		return nil, err
	}
	if services.Policy.MaxNights > 0 && cost.Nights > services.Policy.MaxNights {
		return nil, ErrStayTooLong
	}

	return &Booking{
		id:        uuid.New(),
		listingID: listing.ID,
		guestID:   guestID,
		dates:     dates,
		status:    StatusPending,
		total:     NewMoney(cost.TotalCents),
		message:   message,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(
	id, listingID, guestID uuid.UUID,
	dates availability.DateRange,
	status Status,
	total Money,
	message Message,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		listingID: listingID,
		guestID:   guestID,
		dates:     dates,
		status:    status,
		total:     total,
		message:   message,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// CheckAvailable fails when the booking's dates collide with an occupied range.
func (b *Booking) CheckAvailable(confirmed []availability.DateRange) error {
	if !availability.IsRangeAvailable(b.dates, confirmed) {
		return ErrDatesUnavailable
	}
	return nil
}

// Confirm approves a pending booking. confirmed must hold the listing's other
// confirmed ranges, read in the same transaction that persists the change.
func (b *Booking) Confirm(confirmed []availability.DateRange, now time.Time) error {
	if b.status.IsTerminal() {
		return ErrInvalidTransition
	}
	if err := b.CheckAvailable(confirmed); err != nil {
		return err
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

func (b *Booking) Cancel(now time.Time) error {
	if b.status.IsTerminal() {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) IsConfirmed() bool { return b.status == StatusConfirmed }

func (b *Booking) ID() uuid.UUID                 { return b.id }
func (b *Booking) ListingID() uuid.UUID          { return b.listingID }
func (b *Booking) GuestID() uuid.UUID            { return b.guestID }
func (b *Booking) Dates() availability.DateRange { return b.dates }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) Total() Money                  { return b.total }
func (b *Booking) Message() Message              { return b.message }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time          { return b.updatedAt }

// ConfirmedRanges returns the date ranges of confirmed bookings only.
func ConfirmedRanges(bookings []*Booking) []availability.DateRange {
	out := make([]availability.DateRange, 0, len(bookings))
	for _, b := range bookings {
		if b.IsConfirmed() {
			out = append(out, b.dates)
		}
	}
	return out
}
