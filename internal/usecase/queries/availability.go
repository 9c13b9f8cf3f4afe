package queries

import (
	"context"
	"time"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrWindowTooWide = errs.New("calendar window exceeds the booking horizon")

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

type AvailabilityQueries interface {
	// Calendar returns disabled dates between from and to. Empty bounds
	// default to today and today plus the booking horizon.
	Calendar(ctx context.Context, listingID uuid.UUID, from, to string) (*CalendarView, error)
	Quote(ctx context.Context, listingID uuid.UUID, startDate, endDate string) (*QuoteView, error)
}

type availabilityQueriesImpl struct {
	listings    ListingQueries
	bookings    BookingReadStore
	clock       clock.Clock
	horizonDays int
}

func NewAvailabilityQueries(listings ListingQueries, bookings BookingReadStore, clk clock.Clock, horizonDays int) AvailabilityQueries {
	return &availabilityQueriesImpl{
		listings:    listings,
		bookings:    bookings,
		clock:       clk,
		horizonDays: horizonDays,
	}
}

func (q *availabilityQueriesImpl) Calendar(ctx context.Context, listingID uuid.UUID, from, to string) (*CalendarView, error) {
	window, err := q.window(from, to)
	if err != nil {
		return nil, err
	}

	if _, err := q.listings.GetByID(ctx, listingID); err != nil {
		return nil, err
	}

	ranges, err := q.bookings.ConfirmedRangesBetween(ctx, listingID, window)
	if err != nil {
		return nil, err
	}

	disabled := availability.BuildDisabledDateSetWithin(ranges, window)
	return &CalendarView{
		ListingID:     listingID,
		From:          window.Start().Format(availability.DateLayout),
		To:            window.End().Format(availability.DateLayout),
		DisabledDates: disabled.Strings(),
	}, nil
}

func (q *availabilityQueriesImpl) Quote(ctx context.Context, listingID uuid.UUID, startDate, endDate string) (*QuoteView, error) {
	stay, err := availability.ParseStay(startDate, endDate)
	if err != nil {
		return nil, err
	}

	l, err := q.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	cost, err := availability.ComputeStayCost(stay, l.PricePerNightCents)
	if err != nil {
		return nil, err
	}

	ranges, err := q.bookings.ConfirmedRangesBetween(ctx, listingID, stay)
	if err != nil {
		return nil, err
	}

	return &QuoteView{
		ListingID:          listingID,
		StartDate:          stay.Start().Format(availability.DateLayout),
		EndDate:            stay.End().Format(availability.DateLayout),
		Nights:             cost.Nights,
		PricePerNightCents: l.PricePerNightCents,
		TotalCents:         cost.TotalCents,
		Available:          availability.IsRangeAvailable(stay, ranges),
	}, nil
}

func (q *availabilityQueriesImpl) window(from, to string) (availability.DateRange, error) {
	today := clock.Today(q.clock)
	horizon := time.Duration(q.horizonDays) * 24 * time.Hour

	start := today
	if from != "" {
		t, err := availability.ParseDate(from)
		if err != nil {
			return availability.DateRange{}, err
		}
		start = t
	}

	end := start.Add(horizon)
	if to != "" {
		t, err := availability.ParseDate(to)
		if err != nil {
			return availability.DateRange{}, err
		}
		end = t
	}

	if end.Sub(start) > horizon {
		return availability.DateRange{}, ErrWindowTooWide
	}
	r, err := availability.NewDateRange(start, end)
	if err != nil {
		return availability.DateRange{}, availability.ErrInvalidRange
	}
	return r, nil
}
