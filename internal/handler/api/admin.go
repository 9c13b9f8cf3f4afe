package api

import (
	"net/http"

	reqdto "stay-booking/internal/handler/dto/request"
	resdto "stay-booking/internal/handler/dto/response"
	"stay-booking/internal/handler/httperr"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds commands.AdminCommands
	q    queries.UserQueries
}

func NewAdminHandler(cmds commands.AdminCommands, q queries.UserQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q}
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.UserResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.q.List(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse("users", resdto.FromUserList(items), next))
}

// @Summary Change user role
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateRoleRequest true "New role"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/role [patch]
func (h *AdminHandler) ChangeRole(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	if err := h.cmds.ChangeRole(c.Request.Context(), actorID, userID, req.Role); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deactivate user
// @Tags admin
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) Deactivate(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.cmds.Deactivate(c.Request.Context(), actorID, userID); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
