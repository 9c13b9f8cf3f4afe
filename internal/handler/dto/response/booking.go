package response

import (
	"stay-booking/internal/domain/availability"
	"stay-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID           string `json:"id"`
	ListingID    string `json:"listing_id"`
	ListingTitle string `json:"listing_title"`
	GuestID      string `json:"guest_id"`
	GuestName    string `json:"guest_name"`
	StartDate    string `json:"start_date" copier:"-"`
	EndDate      string `json:"end_date" copier:"-"`
	Status       string `json:"status"`
	TotalCents   int64  `json:"total_cents"`
	Message      string `json:"message"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	copyView(&res, v)
	res.StartDate = v.StartDate.Format(availability.DateLayout)
	res.EndDate = v.EndDate.Format(availability.DateLayout)
	return &res
}

func FromBookingList(items []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, it := range items {
		res[i] = FromBookingView(it)
	}
	return res
}
