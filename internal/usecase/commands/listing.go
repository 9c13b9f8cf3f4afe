package commands

import (
	"context"

	"stay-booking/internal/domain/listing"
	"stay-booking/internal/domain/user"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateListingInput struct {
	OwnerID            uuid.UUID
	Title              string
	Description        string
	PricePerNightCents int64
	Latitude           float64
	Longitude          float64
}

//go:generate mockgen -source=listing.go -destination=../../../tests/mock/commands/listing_mock.go -package=commandsmock

type ListingCommands interface {
	Create(ctx context.Context, in CreateListingInput) (uuid.UUID, error)
	Update(ctx context.Context, listingID, actorID uuid.UUID, actorRole user.Role, changes listing.Changes) error
}

type listingCommandsImpl struct {
	uow   shared.UnitOfWork
	cache ListingCacheInvalidator
	clock clock.Clock
}

func NewListingCommands(uow shared.UnitOfWork, cache ListingCacheInvalidator, clk clock.Clock) ListingCommands {
	return &listingCommandsImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *listingCommandsImpl) Create(ctx context.Context, in CreateListingInput) (uuid.UUID, error) {
	l, err := listing.NewListing(in.OwnerID, in.Title, in.Description, in.PricePerNightCents, in.Latitude, in.Longitude, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Listings().Create(ctx, l); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return l.ID(), nil
}

func (uc *listingCommandsImpl) Update(ctx context.Context, listingID, actorID uuid.UUID, actorRole user.Role, changes listing.Changes) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Listings().LockByID(ctx, listingID)
		if err != nil {
			return mapNotFound(err, ErrListingNotFound)
		}
		if snap.OwnerID != actorID && actorRole != user.RoleAdmin {
			return errs.Mark(listing.ErrNotOwner, errs.ErrForbidden)
		}

		l, err := listingFromSnapshot(snap)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := l.Apply(changes, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Listings().Update(ctx, l); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(listingID)
	return nil
}
