package api

import (
	"net/http"

	reqdto "stay-booking/internal/handler/dto/request"
	resdto "stay-booking/internal/handler/dto/response"
	"stay-booking/internal/handler/httperr"
	"stay-booking/internal/handler/middleware"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AmenityHandler struct {
	cmds commands.AmenityCommands
	q    queries.AmenityQueries
}

func NewAmenityHandler(cmds commands.AmenityCommands, q queries.AmenityQueries) *AmenityHandler {
	return &AmenityHandler{cmds: cmds, q: q}
}

// @Summary List amenities
// @Description The amenity catalogue, ordered by name
// @Tags amenities
// @Produce json
// @Success 200 {array} resdto.AmenityResponse
// @Router /amenities [get]
func (h *AmenityHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"amenities": resdto.FromAmenityList(items)})
}

// @Summary Get amenity
// @Tags amenities
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} resdto.AmenityResponse
// @Failure 404 {object} httperr.Response
// @Router /amenities/{id} [get]
func (h *AmenityHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondWithAmenity(c, http.StatusOK, id)
}

// @Summary Create amenity
// @Tags amenities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AmenityRequest true "Amenity"
// @Success 201 {object} resdto.AmenityResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /amenities [post]
func (h *AmenityHandler) Create(c *gin.Context) {
	var req reqdto.AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.Name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	h.respondWithAmenity(c, http.StatusCreated, id)
}

// @Summary Rename amenity
// @Tags amenities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Amenity ID"
// @Param request body reqdto.AmenityRequest true "Amenity"
// @Success 200 {object} resdto.AmenityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /amenities/{id} [put]
func (h *AmenityHandler) Rename(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	if err := h.cmds.Rename(c.Request.Context(), id, req.Name); err != nil {
		httperr.Respond(c, err)
		return
	}
	h.respondWithAmenity(c, http.StatusOK, id)
}

// @Summary Delete amenity
// @Description Removes the amenity from the catalogue and from every listing
// @Tags amenities
// @Security BearerAuth
// @Param id path string true "Amenity ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /amenities/{id} [delete]
func (h *AmenityHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List listing amenities
// @Tags amenities
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {array} resdto.AmenityResponse
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/amenities [get]
func (h *AmenityHandler) ListByListing(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondWithListingAmenities(c, listingID)
}

// @Summary Set listing amenities
// @Description Replace the listing's amenities. Owner or admin only; an empty list clears them.
// @Tags amenities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.SetListingAmenitiesRequest true "Amenity IDs"
// @Success 200 {array} resdto.AmenityResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id}/amenities [put]
func (h *AmenityHandler) SetForListing(c *gin.Context) {
	listingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.SetListingAmenitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.cmds.SetForListing(c.Request.Context(), listingID, actorID, role, req.AmenityIDs); err != nil {
		httperr.Respond(c, err)
		return
	}
	h.respondWithListingAmenities(c, listingID)
}

func (h *AmenityHandler) respondWithAmenity(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(status, resdto.FromAmenityView(view))
}

func (h *AmenityHandler) respondWithListingAmenities(c *gin.Context, listingID uuid.UUID) {
	items, err := h.q.ListByListing(c.Request.Context(), listingID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"amenities": resdto.FromAmenityList(items)})
}
