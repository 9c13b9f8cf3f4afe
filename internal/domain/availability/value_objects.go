package availability

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

const day = 24 * time.Hour

var (
	ErrStartAfterEnd = errors.New("start date must not be after end date")
	ErrInvalidDate   = errors.New("invalid date")
)

// DateRange is a span of calendar dates, inclusive on both ends.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := truncateDate(start), truncateDate(end)
	if s.After(e) {
		return DateRange{}, ErrStartAfterEnd
	}
	return DateRange{start: s, end: e}, nil
}

// ParseDateRange parses both ends with DateLayout.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

func (r DateRange) Contains(d time.Time) bool {
	d = truncateDate(d)
	return !d.Before(r.start) && !d.After(r.end)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s]", r.start.Format(DateLayout), r.end.Format(DateLayout))
}

type StayCost struct {
	Nights     int
	TotalCents int64
}

// DateSet holds calendar dates keyed at UTC midnight.
type DateSet map[time.Time]struct{}

func (s DateSet) Add(d time.Time) {
	s[truncateDate(d)] = struct{}{}
}

func (s DateSet) Has(d time.Time) bool {
	_, ok := s[truncateDate(d)]
	return ok
}

func (s DateSet) Len() int { return len(s) }

// Dates returns the members in ascending order.
func (s DateSet) Dates() []time.Time {
	out := make([]time.Time, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func (s DateSet) Strings() []string {
	dates := s.Dates()
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(DateLayout)
	}
	return out
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
