package response

import "stay-booking/internal/usecase/queries"

type ListingResponse struct {
	ID                 string  `json:"id"`
	OwnerID            string  `json:"owner_id"`
	OwnerName          string  `json:"owner_name"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	PricePerNightCents int64   `json:"price_per_night_cents"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	AverageRating      float64 `json:"average_rating"`
	ReviewCount        int32   `json:"review_count"`
	CreatedAt          int64   `json:"created_at"`
	UpdatedAt          int64   `json:"updated_at"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	var res ListingResponse
	copyView(&res, v)
	return &res
}

func FromListingList(items []*queries.ListingView) []*ListingResponse {
	res := make([]*ListingResponse, len(items))
	for i, it := range items {
		res[i] = FromListingView(it)
	}
	return res
}

type CalendarResponse = queries.CalendarView

type QuoteResponse = queries.QuoteView
