//go:build unit

package queries_test

import (
	"testing"

	"stay-booking/internal/infra"
	"stay-booking/internal/usecase/queries"
	"stay-booking/tests/common/testutil"
	queriesmock "stay-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAmenityQueries(t *testing.T) (*queriesmock.MockAmenityReadStore, *queriesmock.MockListingQueries, queries.AmenityQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	amenities := queriesmock.NewMockAmenityReadStore(ctrl)
	listings := queriesmock.NewMockListingQueries(ctrl)
	return amenities, listings, queries.NewAmenityQueries(amenities, listings)
}

func amenityView(name string) *queries.AmenityView {
	return &queries.AmenityView{ID: uuid.New(), Name: name, CreatedAt: testutil.FixedNow, UpdatedAt: testutil.FixedNow}
}

func TestAmenityQueries_GetByID(t *testing.T) {
	view := amenityView("Sauna")

	t.Run("found", func(t *testing.T) {
		store, _, q := newAmenityQueries(t)
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(t.Context(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("missing", func(t *testing.T) {
		store, _, q := newAmenityQueries(t)
		store.EXPECT().FindByID(gomock.Any(), view.ID).
			Return(nil, infra.WrapRepoErr("find amenity", assert.AnError, infra.KindNotFound))

		_, err := q.GetByID(t.Context(), view.ID)
		assert.ErrorIs(t, err, queries.ErrAmenityNotFound)
	})
}

func TestAmenityQueries_ListByListing(t *testing.T) {
	listingID := uuid.New()
	views := []*queries.AmenityView{amenityView("Sauna"), amenityView("Wi-Fi")}

	t.Run("known listing", func(t *testing.T) {
		store, listings, q := newAmenityQueries(t)
		listings.EXPECT().GetByID(gomock.Any(), listingID).Return(&queries.ListingView{ID: listingID}, nil)
		store.EXPECT().ListByListing(gomock.Any(), listingID).Return(views, nil)

		got, err := q.ListByListing(t.Context(), listingID)
		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	t.Run("unknown listing", func(t *testing.T) {
		_, listings, q := newAmenityQueries(t)
		listings.EXPECT().GetByID(gomock.Any(), listingID).Return(nil, queries.ErrListingNotFound)

		_, err := q.ListByListing(t.Context(), listingID)
		assert.ErrorIs(t, err, queries.ErrListingNotFound)
	})
}

func TestAmenityQueries_List(t *testing.T) {
	store, _, q := newAmenityQueries(t)
	views := []*queries.AmenityView{amenityView("Balcony")}
	store.EXPECT().List(gomock.Any()).Return(views, nil)

	got, err := q.List(t.Context())
	require.NoError(t, err)
	assert.Equal(t, views, got)
}
