package queries

import (
	"time"

	"github.com/google/uuid"
)

type ListingView struct {
	ID                 uuid.UUID `json:"id"`
	OwnerID            uuid.UUID `json:"owner_id"`
	OwnerName          string    `json:"owner_name"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	AverageRating      float64   `json:"average_rating"`
	ReviewCount        int32     `json:"review_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type ListingFilters struct {
	OwnerID       *uuid.UUID
	MaxPriceCents *int64
}

type BookingView struct {
	ID           uuid.UUID `json:"id"`
	ListingID    uuid.UUID `json:"listing_id"`
	ListingTitle string    `json:"listing_title"`
	OwnerID      uuid.UUID `json:"owner_id"`
	GuestID      uuid.UUID `json:"guest_id"`
	GuestName    string    `json:"guest_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"total_cents"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BookingFilters struct {
	Status *string
}

type AmenityView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewView struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// CalendarView lists the dates a guest cannot pick between From and To.
type CalendarView struct {
	ListingID     uuid.UUID `json:"listing_id"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	DisabledDates []string  `json:"disabled_dates"`
}

type QuoteView struct {
	ListingID          uuid.UUID `json:"listing_id"`
	StartDate          string    `json:"start_date"`
	EndDate            string    `json:"end_date"`
	Nights             int       `json:"nights"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	TotalCents         int64     `json:"total_cents"`
	Available          bool      `json:"available"`
}
