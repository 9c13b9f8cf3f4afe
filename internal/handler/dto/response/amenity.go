package response

import "stay-booking/internal/usecase/queries"

type AmenityResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func FromAmenityView(v *queries.AmenityView) *AmenityResponse {
	var res AmenityResponse
	copyView(&res, v)
	return &res
}

func FromAmenityList(items []*queries.AmenityView) []*AmenityResponse {
	res := make([]*AmenityResponse, len(items))
	for i, it := range items {
		res[i] = FromAmenityView(it)
	}
	return res
}
