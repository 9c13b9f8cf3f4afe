//go:build unit

package commands_test

import (
	"context"
	"testing"

	"stay-booking/internal/usecase/shared"
	sharedmock "stay-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// txMocks wires a unit of work whose Within runs the callback against
// mocked repositories.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	amenities     *sharedmock.MockAmenityRepository
	bookings      *sharedmock.MockBookingRepository
	listings      *sharedmock.MockListingRepository
	reviews       *sharedmock.MockReviewRepository
	users         *sharedmock.MockUserRepository
	notifications *sharedmock.MockNotificationRepository
}

func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		amenities:     sharedmock.NewMockAmenityRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		listings:      sharedmock.NewMockListingRepository(ctrl),
		reviews:       sharedmock.NewMockReviewRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()

	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Amenities().Return(m.amenities).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Listings().Return(m.listings).AnyTimes()
	m.tx.EXPECT().Reviews().Return(m.reviews).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()

	return m
}
