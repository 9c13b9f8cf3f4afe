package commands

import (
	"context"

	"stay-booking/internal/domain/user"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound     = errs.New("user not found")
	ErrSelfModification = errs.New("admins cannot change their own role or status")
)

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin_mock.go -package=commandsmock

type AdminCommands interface {
	ChangeRole(ctx context.Context, actorID, userID uuid.UUID, role string) error
	Deactivate(ctx context.Context, actorID, userID uuid.UUID) error
}

type adminCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAdminCommands(uow shared.UnitOfWork, clk clock.Clock) AdminCommands {
	return &adminCommandsImpl{uow: uow, clock: clk}
}

func (uc *adminCommandsImpl) ChangeRole(ctx context.Context, actorID, userID uuid.UUID, role string) error {
	newRole, err := user.NewRole(role)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	return uc.modify(ctx, actorID, userID, func(u *user.User) error {
		return u.ChangeRole(newRole, uc.clock.Now())
	})
}

func (uc *adminCommandsImpl) Deactivate(ctx context.Context, actorID, userID uuid.UUID) error {
	return uc.modify(ctx, actorID, userID, func(u *user.User) error {
		u.Deactivate(uc.clock.Now())
		return nil
	})
}

func (uc *adminCommandsImpl) modify(ctx context.Context, actorID, userID uuid.UUID, fn func(*user.User) error) error {
	if actorID == userID {
		return errs.Mark(ErrSelfModification, errs.ErrForbidden)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return mapNotFound(err, ErrUserNotFound)
		}
		u, err := userFromSnapshot(snap)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := fn(u); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Users().Save(ctx, u); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
