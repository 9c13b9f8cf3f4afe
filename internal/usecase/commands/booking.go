package commands

import (
	"context"
	"encoding/json"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/domain/booking"
	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound  = errs.New("listing not found")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookingForbidden = errs.New("only the listing owner can manage its bookings")
	ErrStatusNotAllowed = errs.New("status must be confirmed or cancelled")
)

type RequestBookingInput struct {
	ListingID uuid.UUID
	GuestID   uuid.UUID
	Dates     availability.DateRange
	Message   string
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

type BookingCommands interface {
	Request(ctx context.Context, in RequestBookingInput) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, bookingID, actorID uuid.UUID, status string) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, services *booking.Services, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, services: services, clock: clk}
}

func (uc *bookingCommandsImpl) Request(ctx context.Context, in RequestBookingInput) (uuid.UUID, error) {
	msg, err := booking.NewMessage(in.Message)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lst, err := tx.Listings().LockByID(ctx, in.ListingID)
		if err != nil {
			return mapNotFound(err, ErrListingNotFound)
		}

		b, err := booking.NewBooking(uc.services, booking.ListingTerms{
			ID:                 lst.ID,
			OwnerID:            lst.OwnerID,
			PricePerNightCents: lst.PricePerNightCents,
		}, in.GuestID, in.Dates, msg)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		confirmed, err := tx.Bookings().ConfirmedRanges(ctx, lst.ID, uuid.Nil)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := b.CheckAvailable(confirmed); err != nil {
			return errs.Mark(err, errs.ErrConflict)
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := uc.enqueue(ctx, tx, shared.TopicBookingRequested, b, lst.OwnerID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		createdID = b.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *bookingCommandsImpl) UpdateStatus(ctx context.Context, bookingID, actorID uuid.UUID, status string) error {
	target, err := booking.NewStatus(status)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if target == booking.StatusPending {
		return errs.Mark(ErrStatusNotAllowed, errs.ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Bookings().LockByID(ctx, bookingID)
		if err != nil {
			return mapNotFound(err, ErrBookingNotFound)
		}
		// Lock order is booking then listing on every path that confirms.
		lst, err := tx.Listings().LockByID(ctx, snap.ListingID)
		if err != nil {
			return mapNotFound(err, ErrListingNotFound)
		}
		if lst.OwnerID != actorID {
			return errs.Mark(ErrBookingForbidden, errs.ErrForbidden)
		}

		b, err := bookingFromSnapshot(snap)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		now := uc.clock.Now()
		switch target {
		case booking.StatusConfirmed:
			confirmed, err := tx.Bookings().ConfirmedRanges(ctx, lst.ID, b.ID())
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if err := b.Confirm(confirmed, now); err != nil {
				return errs.Mark(err, errs.ErrConflict)
			}
		case booking.StatusCancelled:
			if err := b.Cancel(now); err != nil {
				return errs.Mark(err, errs.ErrConflict)
			}
		}

		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(booking.ErrDatesUnavailable, errs.ErrConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return uc.enqueue(ctx, tx, shared.TopicBookingStatusChanged, b, b.GuestID())
	})
}

func (uc *bookingCommandsImpl) enqueue(ctx context.Context, tx shared.Tx, topic string, b *booking.Booking, recipient uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id":   b.ID(),
		"listing_id":   b.ListingID(),
		"recipient_id": recipient,
		"status":       b.Status().String(),
		"start_date":   b.Dates().Start().Format(availability.DateLayout),
		"end_date":     b.Dates().End().Format(availability.DateLayout),
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, shared.NotificationKindEmail, topic, payload, uc.clock.Now())
}

func mapNotFound(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(notFound, errs.ErrNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
