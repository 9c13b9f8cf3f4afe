package commands

import (
	"context"

	domreview "stay-booking/internal/domain/review"
	"stay-booking/internal/domain/user"
	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound  = errs.New("review not found")
	ErrReviewForbidden = errs.New("only the author or an admin can delete this review")
)

type CreateReviewInput struct {
	ListingID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Comment   string
}

//go:generate mockgen -source=review.go -destination=../../../tests/mock/commands/review_mock.go -package=commandsmock

type ReviewCommands interface {
	Create(ctx context.Context, in CreateReviewInput) (uuid.UUID, error)
	// Update is reserved for the author.
	Update(ctx context.Context, reviewID, actorID uuid.UUID, changes domreview.Changes) error
	// Delete is allowed to the author and admins.
	Delete(ctx context.Context, reviewID, actorID uuid.UUID, actorRole user.Role) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	cache ListingCacheInvalidator
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, cache ListingCacheInvalidator, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, in CreateReviewInput) (uuid.UUID, error) {
	rev, err := domreview.NewReview(uuid.Nil, in.UserID, in.ListingID, in.Rating, in.Comment, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lst, err := tx.Reads().ListingByID(ctx, in.ListingID)
		if err != nil {
			return mapNotFound(err, ErrListingNotFound)
		}
		reviewed, err := tx.Reads().HasReviewed(ctx, in.ListingID, in.UserID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := domreview.CheckEligibility(domreview.EligibilityInput{
			UserID:          in.UserID,
			ListingOwnerID:  lst.OwnerID,
			AlreadyReviewed: reviewed,
		}); err != nil {
			if errs.Is(err, domreview.ErrOwnListing) {
				return errs.Mark(err, errs.ErrForbidden)
			}
			return errs.Mark(err, errs.ErrConflict)
		}

		if err := tx.Reviews().Create(ctx, rev); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(domreview.ErrReviewAlreadyExists, errs.ErrConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	// Listing views carry rating aggregates.
	uc.cache.Invalidate(in.ListingID)
	return rev.ID(), nil
}

func (uc *reviewCommandsImpl) Update(ctx context.Context, reviewID, actorID uuid.UUID, changes domreview.Changes) error {
	var listingID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reviews().LockByID(ctx, reviewID)
		if err != nil {
			return mapNotFound(err, ErrReviewNotFound)
		}
		rev, err := reviewFromSnapshot(snap)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !rev.IsAuthoredBy(actorID) {
			return errs.Mark(domreview.ErrNotAuthor, errs.ErrForbidden)
		}
		if err := rev.Apply(changes, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Reviews().Update(ctx, rev); err != nil {
			return mapNotFound(err, ErrReviewNotFound)
		}
		listingID = rev.ListingID()
		return nil
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(listingID)
	return nil
}

func (uc *reviewCommandsImpl) Delete(ctx context.Context, reviewID, actorID uuid.UUID, actorRole user.Role) error {
	var listingID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reviews().LockByID(ctx, reviewID)
		if err != nil {
			return mapNotFound(err, ErrReviewNotFound)
		}
		if snap.UserID != actorID && actorRole != user.RoleAdmin {
			return errs.Mark(ErrReviewForbidden, errs.ErrForbidden)
		}
		if err := tx.Reviews().Delete(ctx, reviewID); err != nil {
			return mapNotFound(err, ErrReviewNotFound)
		}
		listingID = snap.ListingID
		return nil
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(listingID)
	return nil
}
