package api

import (
	"net/http"

	"stay-booking/internal/domain/availability"
	reqdto "stay-booking/internal/handler/dto/request"
	resdto "stay-booking/internal/handler/dto/response"
	"stay-booking/internal/handler/httperr"
	"stay-booking/internal/handler/middleware"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Request booking
// @Description Ask to stay at a listing. The booking starts pending.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /listings/{id}/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	guestID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	dates, err := availability.ParseStay(req.StartDate, req.EndDate)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	id, err := h.cmds.Request(c.Request.Context(), commands.RequestBookingInput{
		ListingID: listingID,
		GuestID:   guestID,
		Dates:     dates,
		Message:   req.Message,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.respondWithBooking(c, http.StatusCreated, id)
}

// @Summary Get booking
// @Description Visible to the guest, the listing owner and admins
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondWithBooking(c, http.StatusOK, id)
}

// @Summary Update booking status
// @Description Confirm or cancel a pending booking (listing owner only)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	if err := h.cmds.UpdateStatus(c.Request.Context(), id, actorID, req.Status); err != nil {
		httperr.Respond(c, err)
		return
	}
	h.respondWithBooking(c, http.StatusOK, id)
}

// @Summary List listing bookings
// @Description Bookings of one listing (owner or admin)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param status query string false "pending, confirmed or cancelled"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/bookings [get]
func (h *BookingHandler) ListByListing(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)
	cursor, limit := pageParams(c)

	items, next, err := h.q.ListByListing(c.Request.Context(), actorID, role, listingID, statusFilter(c), cursor, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("bookings", resdto.FromBookingList(items), next))
}

// @Summary List my bookings
// @Description Bookings requested by the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, confirmed or cancelled"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	guestID, ok := currentUser(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)

	items, next, err := h.q.ListMine(c.Request.Context(), guestID, statusFilter(c), cursor, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("bookings", resdto.FromBookingList(items), next))
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, status int, id uuid.UUID) {
	actorID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	view, err := h.q.GetByID(c.Request.Context(), actorID, role, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(status, resdto.FromBookingView(view))
}

func statusFilter(c *gin.Context) queries.BookingFilters {
	if s := c.Query("status"); s != "" {
		return queries.BookingFilters{Status: &s}
	}
	return queries.BookingFilters{}
}
