// Package availability decides whether a listing can take a stay over a date
// range and what that stay costs. Every function here is pure.
package availability

import (
	"errors"
	"math"
)

var (
	ErrInvalidRange = errors.New("select a valid date range")
	ErrCostOverflow = errors.New("stay cost is too large")
)

// IsRangeAvailable reports whether candidate shares no date with any of the
// occupied ranges. Callers pass confirmed bookings only.
func IsRangeAvailable(candidate DateRange, existing []DateRange) bool {
	for _, r := range existing {
		if candidate.Overlaps(r) {
			return false
		}
	}
	return true
}

// ComputeStayCost charges one night per day between start and end.
// A range whose start is not before its end has no nights and is rejected.
// Totals that do not fit in int64 fail with ErrCostOverflow.
func ComputeStayCost(r DateRange, pricePerNightCents int64) (StayCost, error) {
	if !r.start.Before(r.end) {
		return StayCost{}, ErrInvalidRange
	}
	nights := int(math.Ceil(float64(r.end.Sub(r.start)) / float64(day)))
	if pricePerNightCents > 0 && int64(nights) > math.MaxInt64/pricePerNightCents {
		return StayCost{}, ErrCostOverflow
	}
	return StayCost{
		Nights:     nights,
		TotalCents: int64(nights) * pricePerNightCents,
	}, nil
}

// BuildDisabledDateSet expands every range into its individual dates.
func BuildDisabledDateSet(existing []DateRange) DateSet {
	set := make(DateSet)
	for _, r := range existing {
		for d := r.start; !d.After(r.end); d = d.Add(day) {
			set[d] = struct{}{}
		}
	}
	return set
}

// BuildDisabledDateSetWithin is BuildDisabledDateSet clipped to window.
func BuildDisabledDateSetWithin(existing []DateRange, window DateRange) DateSet {
	clipped := make([]DateRange, 0, len(existing))
	for _, r := range existing {
		if !r.Overlaps(window) {
			continue
		}
		c := r
		if c.start.Before(window.start) {
			c.start = window.start
		}
		if c.end.After(window.end) {
			c.end = window.end
		}
		clipped = append(clipped, c)
	}
	return BuildDisabledDateSet(clipped)
}

// ParseStay parses a check-in and check-out pair. Pairs that do not span at
// least one night are reported as ErrInvalidRange.
func ParseStay(start, end string) (DateRange, error) {
	r, err := ParseDateRange(start, end)
	if errors.Is(err, ErrStartAfterEnd) {
		return DateRange{}, ErrInvalidRange
	}
	if err != nil {
		return DateRange{}, err
	}
	if !r.start.Before(r.end) {
		return DateRange{}, ErrInvalidRange
	}
	return r, nil
}
