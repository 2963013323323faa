package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	UserID   string `form:"userID" validate:"required" example:"alice"`
	Password string `form:"password" validate:"required" example:"Secret123!"`
}

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	UserID   string `form:"userID" validate:"required,max=64" example:"alice"`
	UserName string `form:"userName" validate:"required" example:"Alice"`
	Password string `form:"password" validate:"required" example:"Secret123!"`
	Email    string `form:"email" validate:"omitempty,email" example:"alice@example.com"`
	Phone    string `form:"phone" validate:"omitempty,max=32" example:"13800000000"`
}

// swagger:model api.ProfileRequest
type ProfileRequest struct {
	UserName string `form:"userName" validate:"required" example:"Alice"`
	Password string `form:"passwordNew" example:"NewSecret!"`
	Email    string `form:"email" validate:"omitempty,email" example:"alice@example.com"`
	Phone    string `form:"phone" validate:"omitempty,max=32" example:"13800000000"`
}

// swagger:model api.AdminUserRequest
type AdminUserRequest struct {
	OldUserID string `form:"oldUserID" example:"alice"`
	UserID    string `form:"userID" validate:"required,max=64" example:"alice2"`
	UserName  string `form:"userName" validate:"required" example:"Alice"`
	Password  string `form:"password" example:"Secret123!"`
	Email     string `form:"email" validate:"omitempty,email" example:"alice@example.com"`
	Phone     string `form:"phone" validate:"omitempty,max=32" example:"13800000000"`
}
