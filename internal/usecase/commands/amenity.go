package commands

import (
	"context"

	"stay-booking/internal/domain/amenity"
	"stay-booking/internal/domain/listing"
	"stay-booking/internal/domain/user"
	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAmenityNotFound = errs.New("amenity not found")

//go:generate mockgen -source=amenity.go -destination=../../../tests/mock/commands/amenity_mock.go -package=commandsmock

// AmenityCommands manages the amenity catalogue. Catalogue writes are
// admin-only; the router enforces that.
type AmenityCommands interface {
	Create(ctx context.Context, name string) (uuid.UUID, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SetForListing replaces the listing's amenities. Owner or admin only.
	SetForListing(ctx context.Context, listingID, actorID uuid.UUID, actorRole user.Role, amenityIDs []uuid.UUID) error
}

type amenityCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAmenityCommands(uow shared.UnitOfWork, clk clock.Clock) AmenityCommands {
	return &amenityCommandsImpl{uow: uow, clock: clk}
}

func (uc *amenityCommandsImpl) Create(ctx context.Context, name string) (uuid.UUID, error) {
	a, err := amenity.NewAmenity(name, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return saveAmenityErr(tx.Amenities().Create(ctx, a))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return a.ID(), nil
}

func (uc *amenityCommandsImpl) Rename(ctx context.Context, id uuid.UUID, name string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Amenities().LockByID(ctx, id)
		if err != nil {
			return mapNotFound(err, ErrAmenityNotFound)
		}
		a, err := amenityFromSnapshot(snap)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := a.Rename(name, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		return saveAmenityErr(tx.Amenities().Update(ctx, a))
	})
}

func (uc *amenityCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Amenities().Delete(ctx, id); err != nil {
			return mapNotFound(err, ErrAmenityNotFound)
		}
		return nil
	})
}

func (uc *amenityCommandsImpl) SetForListing(ctx context.Context, listingID, actorID uuid.UUID, actorRole user.Role, amenityIDs []uuid.UUID) error {
	ids, err := amenity.NormalizeSelection(amenityIDs)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Listings().LockByID(ctx, listingID)
		if err != nil {
			return mapNotFound(err, ErrListingNotFound)
		}
		if snap.OwnerID != actorID && actorRole != user.RoleAdmin {
			return errs.Mark(listing.ErrNotOwner, errs.ErrForbidden)
		}

		if err := tx.Amenities().ReplaceForListing(ctx, listingID, ids); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(amenity.ErrUnknownAmenity, errs.ErrDomainValidation)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func saveAmenityErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(amenity.ErrNameTaken, errs.ErrConflict)
	default:
		return mapNotFound(err, ErrAmenityNotFound)
	}
}
