package components

import (
	"stay-booking/internal/handler"
	"stay-booking/internal/handler/api"
	"stay-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewListingHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewAmenityHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	listing *api.ListingHandler,
	booking *api.BookingHandler,
	review *api.ReviewHandler,
	amenity *api.AmenityHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Listing: listing,
		Booking: booking,
		Review:  review,
		Amenity: amenity,
		Admin:   admin,
	}
}
