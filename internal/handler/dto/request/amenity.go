package request

import "github.com/google/uuid"

type AmenityRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// SetListingAmenitiesRequest replaces the whole set; an empty list clears it.
type SetListingAmenitiesRequest struct {
	AmenityIDs []uuid.UUID `json:"amenity_ids" binding:"required,max=50"`
}
