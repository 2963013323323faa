package model

// Session 登入後保存在 redis 的會話資料，取代分開的 user/admin 兩個欄位
type Session struct {
	ID       string `json:"id"`
	UserID   int    `json:"user_id"`
	LoginID  string `json:"login_id"`
	UserName string `json:"user_name"`
	Role     Role   `json:"role"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
