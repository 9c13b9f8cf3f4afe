package review

import (
	"time"

	"stay-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	listingID uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(id, userID, listingID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:        id,
		userID:    userID,
		listingID: listingID,
		rating:    rating,
		comment:   comment,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReview(id, userID, listingID uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:        id,
		userID:    userID,
		listingID: listingID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

type Changes struct {
	Rating  *int
	Comment *string
}

// Apply validates the merged result before mutating the review.
func (r *Review) Apply(c Changes, now time.Time) error {
	rating, err := NewRating(patch.Coalesce(c.Rating, r.rating.Value()))
	if err != nil {
		return err
	}
	comment, err := NewComment(patch.Coalesce(c.Comment, r.comment.String()))
	if err != nil {
		return err
	}
	r.rating, r.comment = rating, comment
	r.updatedAt = now
	return nil
}

func (r *Review) IsAuthoredBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) ListingID() uuid.UUID { return r.listingID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
