package commands

import (
	"stay-booking/internal/domain/amenity"
	"stay-booking/internal/domain/availability"
	"stay-booking/internal/domain/booking"
	"stay-booking/internal/domain/listing"
	"stay-booking/internal/domain/review"
	"stay-booking/internal/domain/user"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// ListingCacheInvalidator drops cached read models after a listing write.
type ListingCacheInvalidator interface {
	Invalidate(listingID uuid.UUID)
}

func amenityFromSnapshot(s *shared.AmenitySnapshot) (*amenity.Amenity, error) {
	name, err := amenity.NewName(s.Name)
	if err != nil {
		return nil, err
	}
	return amenity.ReconstructAmenity(s.ID, name, s.CreatedAt, s.UpdatedAt), nil
}

func bookingFromSnapshot(s *shared.BookingSnapshot) (*booking.Booking, error) {
	dates, err := availability.NewDateRange(s.StartDate, s.EndDate)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(s.Status)
	if err != nil {
		return nil, err
	}
	msg, err := booking.NewMessage(s.Message)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		s.ID, s.ListingID, s.GuestID,
		dates, status,
		booking.NewMoney(s.TotalCents),
		msg,
		s.CreatedAt, s.UpdatedAt,
	), nil
}

func listingFromSnapshot(s *shared.ListingSnapshot) (*listing.Listing, error) {
	title, err := listing.NewTitle(s.Title)
	if err != nil {
		return nil, err
	}
	desc, err := listing.NewDescription(s.Description)
	if err != nil {
		return nil, err
	}
	price, err := listing.NewPrice(s.PricePerNightCents)
	if err != nil {
		return nil, err
	}
	loc, err := listing.NewLocation(s.Latitude, s.Longitude)
	if err != nil {
		return nil, err
	}
	return listing.ReconstructListing(s.ID, s.OwnerID, title, desc, price, loc, s.CreatedAt, s.UpdatedAt), nil
}

func reviewFromSnapshot(s *shared.ReviewSnapshot) (*review.Review, error) {
	rating, err := review.NewRating(s.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := review.NewComment(s.Comment)
	if err != nil {
		return nil, err
	}
	return review.ReconstructReview(s.ID, s.UserID, s.ListingID, rating, comment, s.CreatedAt, s.UpdatedAt), nil
}

func userFromSnapshot(s *shared.UserSnapshot) (*user.User, error) {
	email, err := user.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(s.FirstName, s.LastName)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(s.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(s.ID, email, s.PasswordHash, name, role, s.LastLogin, s.IsActive, s.CreatedAt, s.UpdatedAt), nil
}
