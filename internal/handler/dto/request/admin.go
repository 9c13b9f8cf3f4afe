package request

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}
