package handler

import (
	"net/http"

	"stay-booking/internal/domain/user"
	"stay-booking/internal/handler/api"
	"stay-booking/internal/handler/middleware"
	"stay-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth    *api.AuthHandler
	Listing *api.ListingHandler
	Booking *api.BookingHandler
	Review  *api.ReviewHandler
	Amenity *api.AmenityHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
		})

		listings := apiGroup.Group("/listings")
		addRoutes(listings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Listing.List},
			{Method: http.MethodPost, Path: "", Handler: h.Listing.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Listing.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Listing.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Listing.Availability},
			{Method: http.MethodGet, Path: "/:id/quote", Handler: h.Listing.Quote},
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Booking.ListByListing, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/:id/bookings", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListByListing},
			{Method: http.MethodPost, Path: "/:id/reviews", Handler: h.Review.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id/amenities", Handler: h.Amenity.ListByListing},
			{Method: http.MethodPut, Path: "/:id/amenities", Handler: h.Amenity.SetForListing, Mw: []gin.HandlerFunc{requireAuth}},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		addRoutes(bookings, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.UpdateStatus},
		})

		reviews := apiGroup.Group("/reviews")
		addRoutes(reviews, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Review.ListMine, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Review.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Review.Update, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete, Mw: []gin.HandlerFunc{requireAuth}},
		})

		adminOnly := []gin.HandlerFunc{requireAuth, authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}
		amenities := apiGroup.Group("/amenities")
		addRoutes(amenities, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Amenity.List},
			{Method: http.MethodPost, Path: "", Handler: h.Amenity.Create, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Amenity.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Amenity.Rename, Mw: adminOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Amenity.Delete, Mw: adminOnly},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(adminOnly...)
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
			{Method: http.MethodPatch, Path: "/users/:id/role", Handler: h.Admin.ChangeRole},
			{Method: http.MethodDelete, Path: "/users/:id", Handler: h.Admin.Deactivate},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs per-route middleware inline as the route's final handler,
// so a c.Next call inside one of them has nothing left to advance to.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
