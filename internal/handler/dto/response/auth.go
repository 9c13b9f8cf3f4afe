package response

import "stay-booking/internal/usecase/queries"

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt int64  `json:"created_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	var res UserResponse
	copyView(&res, v)
	return &res
}

func FromUserList(items []*queries.UserView) []*UserResponse {
	res := make([]*UserResponse, len(items))
	for i, it := range items {
		res[i] = FromUserView(it)
	}
	return res
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type RegisterResponse struct {
	ID string `json:"id"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
