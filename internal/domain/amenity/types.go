package amenity

import "errors"

var (
	ErrEmptyName   = errors.New("amenity name cannot be empty")
	ErrNameTooLong = errors.New("amenity name must be 50 characters or fewer")

	ErrNameTaken        = errors.New("an amenity with this name already exists")
	ErrUnknownAmenity   = errors.New("one or more amenities do not exist")
	ErrTooManyAmenities = errors.New("too many amenities for one listing")
)
