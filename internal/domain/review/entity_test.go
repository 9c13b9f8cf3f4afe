//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"stay-booking/internal/domain/review"
	"stay-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Lovely stay, spotless kitchen.", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "below minimum", mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) }, errIs: review.ErrInvalidRating},
			{name: "minimum", mutate: func(b *builder.ReviewBuilder) { b.WithRating(review.MinRating) }},
			{name: "maximum", mutate: func(b *builder.ReviewBuilder) { b.WithRating(review.MaxRating) }},
			{name: "above maximum", mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) }, errIs: review.ErrInvalidRating},
			{name: "negative", mutate: func(b *builder.ReviewBuilder) { b.WithRating(-1) }, errIs: review.ErrInvalidRating},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "single character", mutate: func(b *builder.ReviewBuilder) { b.WithComment("a") }},
			{name: "at limit", mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength)) }},
			{name: "multibyte at limit", mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("é", review.MaxCommentLength)) }},
			{name: "empty", mutate: func(b *builder.ReviewBuilder) { b.WithComment("") }, errIs: review.ErrEmptyComment},
			{name: "whitespace only", mutate: func(b *builder.ReviewBuilder) { b.WithComment("   ") }, errIs: review.ErrEmptyComment},
			{name: "over limit", mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) }, errIs: review.ErrCommentTooLong},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		r, err := review.NewReview(uuid.Nil, uuid.New(), uuid.New(), 4, "  Trimmed comment  ", time.Now())
		require.NoError(t, err)
		assert.Equal(t, "Trimmed comment", r.Comment().String())
	})

	t.Run("explicit id is kept", func(t *testing.T) {
		id := uuid.New()
		r, err := review.NewReview(id, uuid.New(), uuid.New(), 3, "ok", time.Now())
		require.NoError(t, err)
		assert.Equal(t, id, r.ID())
	})
}

func TestReviewApply(t *testing.T) {
	later := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ptr := func(v int) *int { return &v }
	str := func(v string) *string { return &v }

	t.Run("rating only keeps the comment", func(t *testing.T) {
		r, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, r.Apply(review.Changes{Rating: ptr(2)}, later))
		assert.Equal(t, 2, r.Rating().Value())
		assert.Equal(t, "Lovely stay, spotless kitchen.", r.Comment().String())
		assert.Equal(t, later, r.UpdatedAt())
	})

	t.Run("invalid change leaves the review untouched", func(t *testing.T) {
		r, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		before := r.UpdatedAt()

		err = r.Apply(review.Changes{Rating: ptr(3), Comment: str("  ")}, later)
		require.ErrorIs(t, err, review.ErrEmptyComment)
		assert.Equal(t, 5, r.Rating().Value())
		assert.Equal(t, before, r.UpdatedAt())
	})

	t.Run("authorship", func(t *testing.T) {
		author := uuid.New()
		r, err := builder.NewReviewBuilder().WithUserID(author).BuildDomain()
		require.NoError(t, err)

		assert.True(t, r.IsAuthoredBy(author))
		assert.False(t, r.IsAuthoredBy(uuid.New()))
	})
}

func TestCheckEligibility(t *testing.T) {
	guest, owner := uuid.New(), uuid.New()

	tests := []struct {
		name  string
		in    review.EligibilityInput
		errIs error
	}{
		{name: "guest may review", in: review.EligibilityInput{UserID: guest, ListingOwnerID: owner}},
		{name: "owner may not review own listing", in: review.EligibilityInput{UserID: owner, ListingOwnerID: owner}, errIs: review.ErrOwnListing},
		{name: "second review rejected", in: review.EligibilityInput{UserID: guest, ListingOwnerID: owner, AlreadyReviewed: true}, errIs: review.ErrReviewAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := review.CheckEligibility(tt.in)
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
