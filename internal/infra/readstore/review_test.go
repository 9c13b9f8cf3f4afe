//go:build unit

package readstore

import (
	"context"
	"testing"

	"stay-booking/internal/infra"
	"stay-booking/internal/usecase/queries"
	"stay-booking/tests/common/builder"
	"stay-booking/tests/common/dbtest"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func reviewRow(v *queries.ReviewView) []any {
	return []any{v.ID, v.ListingID, v.UserID, v.UserName, v.Rating, v.Comment, v.CreatedAt, v.UpdatedAt}
}

func TestReviewReadStore_FindByID(t *testing.T) {
	want := builder.NewReviewBuilder().BuildView()

	tests := []struct {
		name     string
		row      dbtest.StubRow
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", row: dbtest.StubRow{Values: reviewRow(want)}},
		{name: "review not found", row: dbtest.StubRow{Err: pgx.ErrNoRows}, wantKind: infra.KindNotFound},
		{name: "database error", row: dbtest.StubRow{Err: assert.AnError}, wantKind: infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(dbtest.MockDBTX)
			db.On("QueryRow", mock.Anything, findReviewViewSQL, []any{want.ID}).Return(tt.row)

			got, err := NewReviewReadStore(db).FindByID(context.Background(), want.ID)
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

func TestReviewReadStore_ListByUser(t *testing.T) {
	author := builder.NewReviewBuilder()
	first := author.BuildView()
	second := builder.NewReviewBuilder().WithUserID(author.UserID).BuildView()

	t.Run("first page binds null keyset", func(t *testing.T) {
		db := new(dbtest.MockDBTX)
		db.On("Query", mock.Anything, listReviewsByUserSQL,
			[]any{author.UserID, pgtype.Timestamptz{}, pgtype.UUID{}, int32(3)}).
			Return(dbtest.NewStubRows(reviewRow(first), reviewRow(second)), nil)

		got, err := NewReviewReadStore(db).ListByUser(context.Background(), author.UserID, nil, 3)
		require.NoError(t, err)
		assert.Equal(t, []*queries.ReviewView{first, second}, got)
		db.AssertExpectations(t)
	})

	t.Run("query failure", func(t *testing.T) {
		db := new(dbtest.MockDBTX)
		db.On("Query", mock.Anything, listReviewsByUserSQL, mock.Anything).Return(nil, assert.AnError)

		_, err := NewReviewReadStore(db).ListByUser(context.Background(), author.UserID, nil, 3)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReviewReadStore_ListByListing(t *testing.T) {
	v := builder.NewReviewBuilder().BuildView()
	after := &queries.PageKey{CreatedAt: v.CreatedAt, ID: v.ID}
	afterAt, afterID := keysetArgs(after)

	db := new(dbtest.MockDBTX)
	db.On("Query", mock.Anything, listReviewsByListingSQL, []any{v.ListingID, afterAt, afterID, int32(21)}).
		Return(dbtest.NewStubRows(), nil)

	got, err := NewReviewReadStore(db).ListByListing(context.Background(), v.ListingID, after, 21)
	require.NoError(t, err)
	assert.Empty(t, got)
	db.AssertExpectations(t)
}
