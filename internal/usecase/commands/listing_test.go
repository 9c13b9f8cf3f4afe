//go:build unit

package commands_test

import (
	"context"
	"testing"

	"stay-booking/internal/domain/listing"
	"stay-booking/internal/domain/user"
	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/pkg/ptr"
	"stay-booking/internal/usecase/commands"
	"stay-booking/tests/common/builder"
	"stay-booking/tests/common/testutil"
	commandsmock "stay-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newListingCommands(t *testing.T) (*txMocks, *commandsmock.MockListingCacheInvalidator, commands.ListingCommands) {
	t.Helper()
	m := newTxMocks(t)
	cache := commandsmock.NewMockListingCacheInvalidator(gomock.NewController(t))
	return m, cache, commands.NewListingCommands(m.uow, cache, clock.NewMockClock(testutil.FixedNow))
}

func TestListingCommands_Create(t *testing.T) {
	t.Run("persists a valid listing", func(t *testing.T) {
		m, _, cmds := newListingCommands(t)
		owner := uuid.New()

		var saved *listing.Listing
		m.listings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *listing.Listing) error { saved = l; return nil })

		id, err := cmds.Create(t.Context(), commands.CreateListingInput{
			OwnerID:            owner,
			Title:              "  Mountain cabin ",
			PricePerNightCents: 9000,
			Latitude:           46.5,
			Longitude:          7.9,
		})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID(), id)
		assert.Equal(t, "Mountain cabin", saved.Title().String())
		assert.Equal(t, owner, saved.OwnerID())
		assert.Equal(t, testutil.FixedNow, saved.CreatedAt())
	})

	t.Run("invalid fields never reach the database", func(t *testing.T) {
		cases := []struct {
			name string
			in   commands.CreateListingInput
			want error
		}{
			{"empty title", commands.CreateListingInput{Title: " ", PricePerNightCents: 100}, listing.ErrEmptyTitle},
			{"zero price", commands.CreateListingInput{Title: "Flat", PricePerNightCents: 0}, listing.ErrInvalidPrice},
			{"latitude out of range", commands.CreateListingInput{Title: "Flat", PricePerNightCents: 100, Latitude: 91}, listing.ErrInvalidLatitude},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, _, cmds := newListingCommands(t)
				_, err := cmds.Create(t.Context(), tc.in)
				assert.True(t, errs.Is(err, tc.want))
				assert.True(t, errs.Is(err, errs.ErrDomainValidation))
			})
		}
	})
}

func TestListingCommands_Update(t *testing.T) {
	snap := builder.NewListingBuilder().BuildSnapshot()

	t.Run("owner patches price and cache is dropped", func(t *testing.T) {
		m, cache, cmds := newListingCommands(t)
		m.listings.EXPECT().LockByID(gomock.Any(), snap.ID).Return(snap, nil)
		m.listings.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *listing.Listing) error {
				assert.Equal(t, int64(15000), l.Price().Cents())
				assert.Equal(t, snap.Title, l.Title().String())
				return nil
			})
		cache.EXPECT().Invalidate(snap.ID)

		err := cmds.Update(t.Context(), snap.ID, snap.OwnerID, user.RoleUser, listing.Changes{
			PricePerNightCents: ptr.To(int64(15000)),
		})
		require.NoError(t, err)
	})

	t.Run("admin may edit any listing", func(t *testing.T) {
		m, cache, cmds := newListingCommands(t)
		m.listings.EXPECT().LockByID(gomock.Any(), snap.ID).Return(snap, nil)
		m.listings.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		cache.EXPECT().Invalidate(snap.ID)

		err := cmds.Update(t.Context(), snap.ID, uuid.New(), user.RoleAdmin, listing.Changes{Title: ptr.To("Renamed")})
		require.NoError(t, err)
	})

	t.Run("other users are forbidden", func(t *testing.T) {
		m, _, cmds := newListingCommands(t)
		m.listings.EXPECT().LockByID(gomock.Any(), snap.ID).Return(snap, nil)

		err := cmds.Update(t.Context(), snap.ID, uuid.New(), user.RoleUser, listing.Changes{Title: ptr.To("Mine now")})
		assert.True(t, errs.Is(err, listing.ErrNotOwner))
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("invalid patch leaves the row alone", func(t *testing.T) {
		m, _, cmds := newListingCommands(t)
		m.listings.EXPECT().LockByID(gomock.Any(), snap.ID).Return(snap, nil)

		err := cmds.Update(t.Context(), snap.ID, snap.OwnerID, user.RoleUser, listing.Changes{PricePerNightCents: ptr.To(int64(-1))})
		assert.True(t, errs.Is(err, listing.ErrInvalidPrice))
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("missing listing", func(t *testing.T) {
		m, _, cmds := newListingCommands(t)
		m.listings.EXPECT().LockByID(gomock.Any(), snap.ID).
			Return(nil, infra.WrapRepoErr("lock listing", assert.AnError, infra.KindNotFound))

		err := cmds.Update(t.Context(), snap.ID, snap.OwnerID, user.RoleUser, listing.Changes{})
		assert.True(t, errs.Is(err, commands.ErrListingNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("database failure", func(t *testing.T) {
		m, _, cmds := newListingCommands(t)
		m.listings.EXPECT().LockByID(gomock.Any(), snap.ID).Return(snap, nil)
		m.listings.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("update listing", assert.AnError))

		err := cmds.Update(t.Context(), snap.ID, snap.OwnerID, user.RoleUser, listing.Changes{})
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
