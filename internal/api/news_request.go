package api

// swagger:model api.NewsRequest
type NewsRequest struct {
	Title   string `form:"title" validate:"required" example:"Spring opening hours"`
	Content string `form:"content" validate:"required" example:"All courts open at 8am from March."`
}
