package listing

import (
	"errors"
	"strings"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 2000
)

// MaxPricePerNightCents is 1,000,000.00 per night.
const MaxPricePerNightCents int64 = 100_000_000

var (
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title must be 100 characters or fewer")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrInvalidPrice       = errors.New("price per night must be positive")
	ErrPriceTooHigh       = errors.New("price per night exceeds the maximum")
	ErrInvalidLatitude    = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude   = errors.New("longitude must be between -180 and 180")
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	if len([]rune(s)) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: s}, nil
}

func (t Title) String() string { return t.value }

type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if len([]rune(s)) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{value: s}, nil
}

func (d Description) String() string { return d.value }

type Price struct {
	cents int64
}

func NewPrice(cents int64) (Price, error) {
	if cents <= 0 {
		return Price{}, ErrInvalidPrice
	}
	if cents > MaxPricePerNightCents {
		return Price{}, ErrPriceTooHigh
	}
	return Price{cents: cents}, nil
}

func (p Price) Cents() int64 { return p.cents }

type Location struct {
	latitude  float64
	longitude float64
}

func NewLocation(lat, lng float64) (Location, error) {
	if lat < -90 || lat > 90 {
		return Location{}, ErrInvalidLatitude
	}
	if lng < -180 || lng > 180 {
		return Location{}, ErrInvalidLongitude
	}
	return Location{latitude: lat, longitude: lng}, nil
}

func (l Location) Latitude() float64  { return l.latitude }
func (l Location) Longitude() float64 { return l.longitude }
