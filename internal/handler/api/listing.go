package api

import (
	"net/http"
	"strconv"

	reqdto "stay-booking/internal/handler/dto/request"
	resdto "stay-booking/internal/handler/dto/response"
	"stay-booking/internal/handler/httperr"
	"stay-booking/internal/handler/middleware"
	"stay-booking/internal/pkg/patch"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	cmds         commands.ListingCommands
	q            queries.ListingQueries
	availability queries.AvailabilityQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries, availability queries.AvailabilityQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary Create listing
// @Description Publish a property owned by the current user
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Create listing request"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	ownerID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	in, err := req.ToInput(ownerID)
	if err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.respondWithListing(c, http.StatusCreated, id)
}

// @Summary Get listing
// @Description Get a listing with its rating summary
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondWithListing(c, http.StatusOK, id)
}

// @Summary List listings
// @Description List listings newest first with keyset pagination
// @Tags listings
// @Produce json
// @Param owner_id query string false "Only listings of this owner"
// @Param max_price query int false "Maximum nightly price in cents"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	var filters queries.ListingFilters
	if v := c.Query("owner_id"); v != "" {
		ownerID, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid owner_id", nil)
			return
		}
		filters.OwnerID = &ownerID
	}
	if v := c.Query("max_price"); v != "" {
		maxPrice, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid max_price", nil)
			return
		}
		filters.MaxPriceCents = &maxPrice
	}
	cursor, limit := pageParams(c)

	items, next, err := h.q.List(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("listings", resdto.FromListingList(items), next))
}

// @Summary Update listing
// @Description Partially update a listing (owner or admin)
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.UpdateListingRequest true "Update listing request"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	if patch.Empty(req) {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoChanges, "No fields to update", nil)
		return
	}
	changes, err := req.ToChanges()
	if err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, actorID, role, changes); err != nil {
		httperr.Respond(c, err)
		return
	}
	h.respondWithListing(c, http.StatusOK, id)
}

// @Summary Listing availability
// @Description Dates that cannot be booked between from and to (inclusive)
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Param from query string false "First date, YYYY-MM-DD (default today)"
// @Param to query string false "Last date, YYYY-MM-DD (default from plus the booking horizon)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/availability [get]
func (h *ListingHandler) Availability(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.availability.Calendar(c.Request.Context(), id, c.Query("from"), c.Query("to"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Quote a stay
// @Description Nights, total price and availability for a prospective stay
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Param start_date query string true "Check-in, YYYY-MM-DD"
// @Param end_date query string true "Check-out, YYYY-MM-DD"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/quote [get]
func (h *ListingHandler) Quote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.availability.Quote(c.Request.Context(), id, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ListingHandler) respondWithListing(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(status, resdto.FromListingView(view))
}
