package components

import (
	"context"

	"stay-booking/internal/infra/cache"
	"stay-booking/internal/infra/db"
	"stay-booking/internal/infra/readstore"
	"stay-booking/internal/infra/uow"
	"stay-booking/internal/pkg/config"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Listing reads go through the in-process cache, which also
		// receives invalidations from listing and review commands.
		readstore.NewListingReadStore,
		NewCachedListingReadStore,
		fx.Annotate(
			func(c *cache.ListingReadStore) *cache.ListingReadStore { return c },
			fx.As(new(queries.ListingReadStore)),
			fx.As(new(commands.ListingCacheInvalidator)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewAmenityReadStore,
			fx.As(new(queries.AmenityReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Write repositories are created per transaction by the unit of work.
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCachedListingReadStore(lc fx.Lifecycle, cfg config.Config, next *readstore.ListingReadStore) *cache.ListingReadStore {
	c := cache.NewListingReadStore(next, cfg.Cache.ListingMaxSize, cfg.Cache.ListingTTL)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			c.Stop()
			return nil
		},
	})
	return c
}
