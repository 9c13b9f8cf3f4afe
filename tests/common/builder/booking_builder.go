//go:build unit || e2e

package builder

import (
	"time"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/domain/booking"
	reqdto "stay-booking/internal/handler/dto/request"
	"stay-booking/internal/usecase/queries"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingBuilder defaults to a three night pending stay in the future
// relative to testutil.FixedNow.
type BookingBuilder struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	OwnerID    uuid.UUID
	GuestID    uuid.UUID
	StartDate  string
	EndDate    string
	Status     booking.Status
	TotalCents int64
	Message    string
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		ListingID:  uuid.New(),
		OwnerID:    uuid.New(),
		GuestID:    uuid.New(),
		StartDate:  "2025-04-01",
		EndDate:    "2025-04-04",
		Status:     booking.StatusPending,
		TotalCents: 36000,
		Message:    "Arriving late in the evening.",
		CreatedAt:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Dates() availability.DateRange {
	r, err := availability.ParseDateRange(b.StartDate, b.EndDate)
	if err != nil {
		panic(err)
	}
	return r
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	msg, err := booking.NewMessage(b.Message)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.ID, b.ListingID, b.GuestID,
		b.Dates(), b.Status,
		booking.NewMoney(b.TotalCents),
		msg,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	r := b.Dates()
	return &shared.BookingSnapshot{
		ID:         b.ID,
		ListingID:  b.ListingID,
		GuestID:    b.GuestID,
		StartDate:  r.Start(),
		EndDate:    r.End(),
		Status:     b.Status.String(),
		TotalCents: b.TotalCents,
		Message:    b.Message,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	r := b.Dates()
	return &queries.BookingView{
		ID:           b.ID,
		ListingID:    b.ListingID,
		ListingTitle: "Seaside cottage",
		OwnerID:      b.OwnerID,
		GuestID:      b.GuestID,
		GuestName:    "Hana Guest",
		StartDate:    r.Start(),
		EndDate:      r.End(),
		Status:       b.Status.String(),
		TotalCents:   b.TotalCents,
		Message:      b.Message,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Message:   b.Message,
	}
}

func (b *BookingBuilder) WithDates(start, end string) *BookingBuilder {
	b.StartDate, b.EndDate = start, end
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithListing(listingID, ownerID uuid.UUID) *BookingBuilder {
	b.ListingID, b.OwnerID = listingID, ownerID
	return b
}

func (b *BookingBuilder) WithGuestID(id uuid.UUID) *BookingBuilder {
	b.GuestID = id
	return b
}
