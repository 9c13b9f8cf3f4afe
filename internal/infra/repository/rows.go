package repository

import (
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	amenityColumns = `id, name, created_at, updated_at`
	listingColumns = `id, owner_id, title, description, price_per_night_cents, latitude, longitude, created_at, updated_at`
	bookingColumns = `id, listing_id, guest_id, start_date, end_date, status, total_cents, message, created_at, updated_at`
	reviewColumns  = `id, listing_id, user_id, rating, comment, created_at, updated_at`
	userColumns    = `id, email, password_hash, first_name, last_name, role, is_active, last_login, created_at, updated_at`
)

func scanAmenitySnapshot(row pgx.Row) (*shared.AmenitySnapshot, error) {
	var s shared.AmenitySnapshot
	if err := row.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanListingSnapshot(row pgx.Row) (*shared.ListingSnapshot, error) {
	var s shared.ListingSnapshot
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Title, &s.Description,
		&s.PricePerNightCents, &s.Latitude, &s.Longitude,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanBookingSnapshot(row pgx.Row) (*shared.BookingSnapshot, error) {
	var (
		s          shared.BookingSnapshot
		start, end pgtype.Date
	)
	err := row.Scan(
		&s.ID, &s.ListingID, &s.GuestID, &start, &end,
		&s.Status, &s.TotalCents, &s.Message,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if s.StartDate, err = pgconv.DateFromPgtype(start); err != nil {
		return nil, err
	}
	if s.EndDate, err = pgconv.DateFromPgtype(end); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanReviewSnapshot(row pgx.Row) (*shared.ReviewSnapshot, error) {
	var (
		s      shared.ReviewSnapshot
		rating int16
	)
	if err := row.Scan(&s.ID, &s.ListingID, &s.UserID, &rating, &s.Comment, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Rating = int(rating)
	return &s, nil
}

func scanUserSnapshot(row pgx.Row) (*shared.UserSnapshot, error) {
	var (
		s         shared.UserSnapshot
		lastLogin pgtype.Timestamptz
	)
	err := row.Scan(
		&s.ID, &s.Email, &s.PasswordHash, &s.FirstName, &s.LastName,
		&s.Role, &s.IsActive, &lastLogin, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &s, nil
}
