package queries

import (
	"context"
	"time"

	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

//go:generate mockgen -source=review.go -destination=../../../tests/mock/queries/review_mock.go -package=queriesmock

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByListing(ctx context.Context, listingID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
}

type reviewQueriesImpl struct {
	reviews  ReviewReadStore
	listings ListingQueries
}

func NewReviewQueries(reviews ReviewReadStore, listings ListingQueries) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews, listings: listings}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	v, err := q.reviews.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *reviewQueriesImpl) ListByListing(ctx context.Context, listingID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	if _, err := q.listings.GetByID(ctx, listingID); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	after, err := decodePageKey(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.reviews.ListByListing(ctx, listingID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := trimPage(rows, limit, reviewKey)
	return page, next, nil
}

func (q *reviewQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodePageKey(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.reviews.ListByUser(ctx, userID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := trimPage(rows, limit, reviewKey)
	return page, next, nil
}

func reviewKey(v *ReviewView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID }
