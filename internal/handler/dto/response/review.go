package response

import "stay-booking/internal/usecase/queries"

type ReviewResponse struct {
	ID        string `json:"id"`
	ListingID string `json:"listing_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Rating    int32  `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	var res ReviewResponse
	copyView(&res, v)
	return &res
}

func FromReviewList(items []*queries.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, len(items))
	for i, it := range items {
		res[i] = FromReviewView(it)
	}
	return res
}

type CreatedResponse struct {
	ID string `json:"id"`
}
