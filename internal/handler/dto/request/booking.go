package request

type CreateBookingRequest struct {
	StartDate string `json:"start_date" binding:"required" example:"2024-03-01"`
	EndDate   string `json:"end_date" binding:"required" example:"2024-03-04"`
	Message   string `json:"message" binding:"max=500"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
}
