package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read models.

type ListingSnapshot struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	Title              string
	Description        string
	PricePerNightCents int64
	Latitude           float64
	Longitude          float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type BookingSnapshot struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	GuestID    uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	TotalCents int64
	Message    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type AmenitySnapshot struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReviewSnapshot struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Notification kinds written to the outbox.
const (
	NotificationKindEmail = "email"

	TopicBookingRequested     = "booking_requested"
	TopicBookingStatusChanged = "booking_status_changed"
)
