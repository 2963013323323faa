package api

// swagger:model api.VenueRequest
type VenueRequest struct {
	VenueName   string `form:"venueName" validate:"required" example:"Court A"`
	Address     string `form:"address" validate:"required" example:"1 Main St"`
	Description string `form:"description" validate:"required" example:"Indoor badminton court"`
	OpenTime    string `form:"open_time" validate:"required,hhmm" example:"08:00"`
	CloseTime   string `form:"close_time" validate:"required,hhmm" example:"20:00"`
}
