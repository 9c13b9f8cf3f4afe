package review

import "github.com/google/uuid"

type EligibilityInput struct {
	UserID          uuid.UUID
	ListingOwnerID  uuid.UUID
	AlreadyReviewed bool
}

func CheckEligibility(in EligibilityInput) error {
	if in.UserID == in.ListingOwnerID {
		return ErrOwnListing
	}
	if in.AlreadyReviewed {
		return ErrReviewAlreadyExists
	}
	return nil
}
