package api

// swagger:model api.OrderRequest
type OrderRequest struct {
	VenueName string `form:"venueName" validate:"required" example:"Court A"`
	Date      string `form:"date" validate:"required,datetime=2006-01-02" example:"2025-03-02"`
	StartTime string `form:"startTime" validate:"required,hhmm" example:"09:00"`
}
