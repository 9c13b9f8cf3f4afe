//go:build unit

package readstore

import (
	"context"
	"testing"

	"stay-booking/internal/infra"
	"stay-booking/internal/usecase/queries"
	"stay-booking/tests/common/dbtest"
	"stay-booking/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func amenityRow(v *queries.AmenityView) []any {
	return []any{v.ID, v.Name, v.CreatedAt, v.UpdatedAt}
}

func newAmenityView(name string) *queries.AmenityView {
	return &queries.AmenityView{ID: uuid.New(), Name: name, CreatedAt: testutil.FixedNow, UpdatedAt: testutil.FixedNow}
}

func TestAmenityReadStore_FindByID(t *testing.T) {
	want := newAmenityView("Sauna")

	tests := []struct {
		name     string
		row      dbtest.StubRow
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", row: dbtest.StubRow{Values: amenityRow(want)}},
		{name: "amenity not found", row: dbtest.StubRow{Err: pgx.ErrNoRows}, wantKind: infra.KindNotFound},
		{name: "database error", row: dbtest.StubRow{Err: assert.AnError}, wantKind: infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(dbtest.MockDBTX)
			db.On("QueryRow", mock.Anything, findAmenityViewSQL, []any{want.ID}).Return(tt.row)

			got, err := NewAmenityReadStore(db).FindByID(context.Background(), want.ID)
			if tt.wantKind != "" {
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestAmenityReadStore_List(t *testing.T) {
	balcony, sauna := newAmenityView("Balcony"), newAmenityView("Sauna")

	t.Run("catalogue", func(t *testing.T) {
		db := new(dbtest.MockDBTX)
		db.On("Query", mock.Anything, listAmenityViewsSQL, mock.Anything).
			Return(dbtest.NewStubRows(amenityRow(balcony), amenityRow(sauna)), nil)

		got, err := NewAmenityReadStore(db).List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []*queries.AmenityView{balcony, sauna}, got)
	})

	t.Run("empty catalogue is an empty slice", func(t *testing.T) {
		db := new(dbtest.MockDBTX)
		db.On("Query", mock.Anything, listAmenityViewsSQL, mock.Anything).Return(dbtest.NewStubRows(), nil)

		got, err := NewAmenityReadStore(db).List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestAmenityReadStore_ListByListing(t *testing.T) {
	listingID := uuid.New()
	wifi := newAmenityView("Wi-Fi")

	t.Run("binds the listing id", func(t *testing.T) {
		db := new(dbtest.MockDBTX)
		db.On("Query", mock.Anything, listListingAmenityViewsSQL, []any{listingID}).
			Return(dbtest.NewStubRows(amenityRow(wifi)), nil)

		got, err := NewAmenityReadStore(db).ListByListing(context.Background(), listingID)
		require.NoError(t, err)
		assert.Equal(t, []*queries.AmenityView{wifi}, got)
		db.AssertExpectations(t)
	})

	t.Run("query failure", func(t *testing.T) {
		db := new(dbtest.MockDBTX)
		db.On("Query", mock.Anything, listListingAmenityViewsSQL, mock.Anything).Return(nil, assert.AnError)

		_, err := NewAmenityReadStore(db).ListByListing(context.Background(), listingID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
