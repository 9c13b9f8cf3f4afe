package request

import (
	"stay-booking/internal/domain/listing"
	"stay-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateListingRequest struct {
	Title              string  `json:"title" binding:"required,max=100"`
	Description        string  `json:"description" binding:"max=2000"`
	PricePerNightCents int64   `json:"price_per_night_cents" binding:"required,gt=0,lte=100000000"`
	Latitude           float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude          float64 `json:"longitude" binding:"min=-180,max=180"`
}

func (r *CreateListingRequest) ToInput(ownerID uuid.UUID) (commands.CreateListingInput, error) {
	in := commands.CreateListingInput{OwnerID: ownerID}
	if err := copier.Copy(&in, r); err != nil {
		return commands.CreateListingInput{}, err
	}
	return in, nil
}

type UpdateListingRequest struct {
	Title              *string  `json:"title" binding:"omitempty,max=100"`
	Description        *string  `json:"description" binding:"omitempty,max=2000"`
	PricePerNightCents *int64   `json:"price_per_night_cents" binding:"omitempty,gt=0,lte=100000000"`
	Latitude           *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude          *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

func (r *UpdateListingRequest) ToChanges() (listing.Changes, error) {
	var changes listing.Changes
	if err := copier.Copy(&changes, r); err != nil {
		return listing.Changes{}, err
	}
	return changes, nil
}
