//go:build unit || e2e

package builder

import (
	"time"

	domreview "stay-booking/internal/domain/review"
	reqdto "stay-booking/internal/handler/dto/request"
	"stay-booking/internal/usecase/queries"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	UserName  string
	ListingID uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		UserName:  "Hana Guest",
		ListingID: uuid.New(),
		Rating:    5,
		Comment:   "Lovely stay, spotless kitchen.",
		CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.UserID, r.ListingID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:        r.ID,
		ListingID: r.ListingID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:        r.ID,
		ListingID: r.ListingID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Rating:    int32(r.Rating),
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildCreateRequest() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithListingID(id uuid.UUID) *ReviewBuilder {
	r.ListingID = id
	return r
}

func (r *ReviewBuilder) WithUserID(id uuid.UUID) *ReviewBuilder {
	r.UserID = id
	return r
}
