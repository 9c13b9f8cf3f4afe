package listing

import (
	"errors"
	"time"

	"stay-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var ErrNotOwner = errors.New("only the owner can modify this listing")

type Listing struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	title       Title
	description Description
	price       Price
	location    Location
	createdAt   time.Time
	updatedAt   time.Time
}

func NewListing(ownerID uuid.UUID, title, description string, priceCents int64, lat, lng float64, now time.Time) (*Listing, error) {
	t, err := NewTitle(title)
	if err != nil {
		return nil, err
	}
	d, err := NewDescription(description)
	if err != nil {
		return nil, err
	}
	p, err := NewPrice(priceCents)
	if err != nil {
		return nil, err
	}
	loc, err := NewLocation(lat, lng)
	if err != nil {
		return nil, err
	}

	return &Listing{
		id:          uuid.New(),
		ownerID:     ownerID,
		title:       t,
		description: d,
		price:       p,
		location:    loc,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructListing(
	id, ownerID uuid.UUID,
	title Title,
	description Description,
	price Price,
	location Location,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:          id,
		ownerID:     ownerID,
		title:       title,
		description: description,
		price:       price,
		location:    location,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

type Changes struct {
	Title              *string
	Description        *string
	PricePerNightCents *int64
	Latitude           *float64
	Longitude          *float64
}

// Apply validates the merged result before mutating the listing.
func (l *Listing) Apply(c Changes, now time.Time) error {
	t, err := NewTitle(patch.Coalesce(c.Title, l.title.String()))
	if err != nil {
		return err
	}
	d, err := NewDescription(patch.Coalesce(c.Description, l.description.String()))
	if err != nil {
		return err
	}
	p, err := NewPrice(patch.Coalesce(c.PricePerNightCents, l.price.Cents()))
	if err != nil {
		return err
	}
	loc, err := NewLocation(
		patch.Coalesce(c.Latitude, l.location.Latitude()),
		patch.Coalesce(c.Longitude, l.location.Longitude()),
	)
	if err != nil {
		return err
	}

	l.title, l.description, l.price, l.location = t, d, p, loc
	l.updatedAt = now
	return nil
}

func (l *Listing) IsOwnedBy(userID uuid.UUID) bool {
	return l.ownerID == userID
}

func (l *Listing) ID() uuid.UUID            { return l.id }
func (l *Listing) OwnerID() uuid.UUID       { return l.ownerID }
func (l *Listing) Title() Title             { return l.title }
func (l *Listing) Description() Description { return l.description }
func (l *Listing) Price() Price             { return l.price }
func (l *Listing) Location() Location       { return l.location }
func (l *Listing) CreatedAt() time.Time     { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time     { return l.updatedAt }
