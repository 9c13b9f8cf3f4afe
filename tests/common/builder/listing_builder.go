//go:build unit || e2e

package builder

import (
	"time"

	"stay-booking/internal/domain/listing"
	reqdto "stay-booking/internal/handler/dto/request"
	"stay-booking/internal/usecase/queries"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	OwnerName          string
	Title              string
	Description        string
	PricePerNightCents int64
	Latitude           float64
	Longitude          float64
	CreatedAt          time.Time
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		ID:                 uuid.New(),
		OwnerID:            uuid.New(),
		OwnerName:          "Olive Owner",
		Title:              "Seaside cottage",
		Description:        "Two bedrooms and a view of the bay.",
		PricePerNightCents: 12000,
		Latitude:           35.3,
		Longitude:          139.5,
		CreatedAt:          time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

func (l *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	return listing.NewListing(l.OwnerID, l.Title, l.Description, l.PricePerNightCents, l.Latitude, l.Longitude, l.CreatedAt)
}

func (l *ListingBuilder) BuildSnapshot() *shared.ListingSnapshot {
	return &shared.ListingSnapshot{
		ID:                 l.ID,
		OwnerID:            l.OwnerID,
		Title:              l.Title,
		Description:        l.Description,
		PricePerNightCents: l.PricePerNightCents,
		Latitude:           l.Latitude,
		Longitude:          l.Longitude,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.CreatedAt,
	}
}

func (l *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:                 l.ID,
		OwnerID:            l.OwnerID,
		OwnerName:          l.OwnerName,
		Title:              l.Title,
		Description:        l.Description,
		PricePerNightCents: l.PricePerNightCents,
		Latitude:           l.Latitude,
		Longitude:          l.Longitude,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.CreatedAt,
	}
}

func (l *ListingBuilder) BuildCreateRequest() reqdto.CreateListingRequest {
	return reqdto.CreateListingRequest{
		Title:              l.Title,
		Description:        l.Description,
		PricePerNightCents: l.PricePerNightCents,
		Latitude:           l.Latitude,
		Longitude:          l.Longitude,
	}
}

func (l *ListingBuilder) WithID(id uuid.UUID) *ListingBuilder {
	l.ID = id
	return l
}

func (l *ListingBuilder) WithOwnerID(id uuid.UUID) *ListingBuilder {
	l.OwnerID = id
	return l
}

func (l *ListingBuilder) WithPrice(cents int64) *ListingBuilder {
	l.PricePerNightCents = cents
	return l
}

func (l *ListingBuilder) WithTitle(title string) *ListingBuilder {
	l.Title = title
	return l
}
