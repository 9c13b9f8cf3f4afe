//go:build unit

package queries_test

import (
	"testing"

	"stay-booking/internal/infra"
	"stay-booking/internal/usecase/queries"
	"stay-booking/tests/common/builder"
	queriesmock "stay-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReviewQueries(t *testing.T) (*queriesmock.MockReviewReadStore, *queriesmock.MockListingQueries, queries.ReviewQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reviews := queriesmock.NewMockReviewReadStore(ctrl)
	listings := queriesmock.NewMockListingQueries(ctrl)
	return reviews, listings, queries.NewReviewQueries(reviews, listings)
}

func TestReviewQueries_GetByID(t *testing.T) {
	view := builder.NewReviewBuilder().BuildView()

	t.Run("found", func(t *testing.T) {
		store, _, q := newReviewQueries(t)
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := q.GetByID(t.Context(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("missing", func(t *testing.T) {
		store, _, q := newReviewQueries(t)
		store.EXPECT().FindByID(gomock.Any(), view.ID).
			Return(nil, infra.WrapRepoErr("find review", assert.AnError, infra.KindNotFound))

		_, err := q.GetByID(t.Context(), view.ID)
		assert.ErrorIs(t, err, queries.ErrReviewNotFound)
	})
}

func TestReviewQueries_ListByUser(t *testing.T) {
	author := uuid.New()
	rows := []*queries.ReviewView{
		builder.NewReviewBuilder().WithUserID(author).BuildView(),
		builder.NewReviewBuilder().WithUserID(author).BuildView(),
	}

	t.Run("pages with a next cursor", func(t *testing.T) {
		store, _, q := newReviewQueries(t)
		store.EXPECT().ListByUser(gomock.Any(), author, (*queries.PageKey)(nil), int32(2)).Return(rows, nil)

		page, next, err := q.ListByUser(t.Context(), author, nil, 1)
		require.NoError(t, err)
		assert.Len(t, page, 1)
		require.NotNil(t, next)

		_, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[0].ID, id)
	})

	t.Run("default limit", func(t *testing.T) {
		store, _, q := newReviewQueries(t)
		store.EXPECT().ListByUser(gomock.Any(), author, gomock.Any(), int32(queries.DefaultListLimit+1)).Return(rows, nil)

		page, next, err := q.ListByUser(t.Context(), author, nil, 0)
		require.NoError(t, err)
		assert.Len(t, page, 2)
		assert.Nil(t, next)
	})
}

func TestReviewQueries_ListByListing(t *testing.T) {
	lst := builder.NewListingBuilder().BuildView()

	t.Run("unknown listing stops before the store", func(t *testing.T) {
		_, listings, q := newReviewQueries(t)
		listings.EXPECT().GetByID(gomock.Any(), lst.ID).Return(nil, queries.ErrListingNotFound)

		_, _, err := q.ListByListing(t.Context(), lst.ID, nil, 10)
		assert.ErrorIs(t, err, queries.ErrListingNotFound)
	})

	t.Run("lists newest first from the store", func(t *testing.T) {
		store, listings, q := newReviewQueries(t)
		rows := []*queries.ReviewView{builder.NewReviewBuilder().WithListingID(lst.ID).BuildView()}
		listings.EXPECT().GetByID(gomock.Any(), lst.ID).Return(lst, nil)
		store.EXPECT().ListByListing(gomock.Any(), lst.ID, (*queries.PageKey)(nil), int32(11)).Return(rows, nil)

		page, next, err := q.ListByListing(t.Context(), lst.ID, nil, 10)
		require.NoError(t, err)
		assert.Equal(t, rows, page)
		assert.Nil(t, next)
	})
}
