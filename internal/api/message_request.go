package api

// swagger:model api.MessageRequest
type MessageRequest struct {
	Content string `form:"content" validate:"required" example:"Great venue!"`
}
