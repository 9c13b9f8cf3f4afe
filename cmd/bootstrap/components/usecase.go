package components

import (
	"stay-booking/internal/domain/booking"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/config"
	"stay-booking/internal/pkg/password"
	"stay-booking/internal/usecase"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) *password.Hasher {
		return password.NewHasher(cfg.Auth.BcryptCost)
	},
	func(clk clock.Clock, cfg config.Config) *booking.Services {
		return &booking.Services{
			Clock:  clk,
			Policy: booking.Policy{MaxNights: cfg.Booking.MaxNights},
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewListingCommands,
		commands.NewBookingCommands,
		commands.NewReviewCommands,
		commands.NewAmenityCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewListingQueries,
		queries.NewBookingQueries,
		queries.NewReviewQueries,
		queries.NewAmenityQueries,
		func(listings queries.ListingQueries, bookings queries.BookingReadStore, clk clock.Clock, cfg config.Config) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(listings, bookings, clk, cfg.Booking.HorizonDays)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
