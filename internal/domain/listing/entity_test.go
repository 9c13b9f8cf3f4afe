//go:build unit

package listing_test

import (
	"strings"
	"testing"
	"time"

	"stay-booking/internal/domain/listing"
	"stay-booking/internal/pkg/ptr"
	"stay-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ListingBuilder)
	errIs  error
}

func TestListing(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewListingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsOwnedBy(b.OwnerID))
		assert.False(t, actual.IsOwnedBy(uuid.New()))
		assert.Equal(t, int64(12000), actual.Price().Cents())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "blank title", mutate: func(b *builder.ListingBuilder) { b.Title = "   " }, errIs: listing.ErrEmptyTitle},
			{name: "title at limit", mutate: func(b *builder.ListingBuilder) { b.Title = strings.Repeat("t", listing.MaxTitleLength) }},
			{name: "title too long", mutate: func(b *builder.ListingBuilder) { b.Title = strings.Repeat("t", listing.MaxTitleLength+1) }, errIs: listing.ErrTitleTooLong},
			{name: "empty description allowed", mutate: func(b *builder.ListingBuilder) { b.Description = "" }},
			{name: "description too long", mutate: func(b *builder.ListingBuilder) { b.Description = strings.Repeat("d", listing.MaxDescriptionLength+1) }, errIs: listing.ErrDescriptionTooLong},
			{name: "zero price", mutate: func(b *builder.ListingBuilder) { b.PricePerNightCents = 0 }, errIs: listing.ErrInvalidPrice},
			{name: "negative price", mutate: func(b *builder.ListingBuilder) { b.PricePerNightCents = -1 }, errIs: listing.ErrInvalidPrice},
			{name: "price at cap", mutate: func(b *builder.ListingBuilder) { b.PricePerNightCents = listing.MaxPricePerNightCents }},
			{name: "price above cap", mutate: func(b *builder.ListingBuilder) { b.PricePerNightCents = listing.MaxPricePerNightCents + 1 }, errIs: listing.ErrPriceTooHigh},
			{name: "latitude out of range", mutate: func(b *builder.ListingBuilder) { b.Latitude = 90.5 }, errIs: listing.ErrInvalidLatitude},
			{name: "longitude out of range", mutate: func(b *builder.ListingBuilder) { b.Longitude = -181 }, errIs: listing.ErrInvalidLongitude},
			{name: "poles and antimeridian", mutate: func(b *builder.ListingBuilder) { b.Latitude, b.Longitude = -90, 180 }},
		})
	})
}

func TestListingApply(t *testing.T) {
	later := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		l, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)

		err = l.Apply(listing.Changes{PricePerNightCents: ptr.To(int64(9900))}, later)
		require.NoError(t, err)

		assert.Equal(t, int64(9900), l.Price().Cents())
		assert.Equal(t, "Seaside cottage", l.Title().String())
		assert.Equal(t, later, l.UpdatedAt())
	})

	t.Run("invalid change leaves listing untouched", func(t *testing.T) {
		l, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)
		before := l.UpdatedAt()

		err = l.Apply(listing.Changes{
			Title:     ptr.To("New title"),
			Longitude: ptr.To(200.0),
		}, later)
		require.ErrorIs(t, err, listing.ErrInvalidLongitude)

		assert.Equal(t, "Seaside cottage", l.Title().String())
		assert.Equal(t, before, l.UpdatedAt())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewListingBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}
