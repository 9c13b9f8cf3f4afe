package api

import (
	"net/http"

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

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Rate a listing. One review per user and listing; owners cannot review their own listings.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /listings/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), commands.CreateReviewInput{
		ListingID: listingID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}

// @Summary List listing reviews
// @Description Reviews of a listing, newest first
// @Tags reviews
// @Produce json
// @Param id path string true "Listing ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/reviews [get]
func (h *ReviewHandler) ListByListing(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	cursor, limit := pageParams(c)

	items, next, err := h.q.ListByListing(c.Request.Context(), listingID, cursor, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("reviews", resdto.FromReviewList(items), next))
}

// @Summary Get review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondWithReview(c, http.StatusOK, id)
}

// @Summary List my reviews
// @Description Reviews written by the current user, newest first
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 401 {object} httperr.Response
// @Router /reviews [get]
func (h *ReviewHandler) ListMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cursor, limit := pageParams(c)

	items, next, err := h.q.ListByUser(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("reviews", resdto.FromReviewList(items), next))
}

// @Summary Update review
// @Description Change the rating or comment of your own review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}

	var req reqdto.UpdateReviewRequest
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

	if err := h.cmds.Update(c.Request.Context(), id, actorID, changes); err != nil {
		httperr.Respond(c, err)
		return
	}
	h.respondWithReview(c, http.StatusOK, id)
}

// @Summary Delete review
// @Description Authors may delete their review; admins may delete any
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.cmds.Delete(c.Request.Context(), id, actorID, role); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) respondWithReview(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(status, resdto.FromReviewView(view))
}
