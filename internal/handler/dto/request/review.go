package request

import (
	"stay-booking/internal/domain/review"

	"github.com/jinzhu/copier"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=1000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

func (r *UpdateReviewRequest) ToChanges() (review.Changes, error) {
	var changes review.Changes
	if err := copier.Copy(&changes, r); err != nil {
		return review.Changes{}, err
	}
	return changes, nil
}
