// File: internal/model/user.go
package model

import "fmt"

// Role 區分一般使用者與管理員，數值與 users.is_admin 欄位一致
type Role int

const (
	RoleUser  Role = 0
	RoleAdmin Role = 1
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// RoleFromIsAdmin 只接受 0 與 1，其餘值視為資料錯誤
func RoleFromIsAdmin(isAdmin int) (Role, error) {
	switch isAdmin {
	case 0:
		return RoleUser, nil
	case 1:
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("invalid isadmin value %d", isAdmin)
	}
}

type User struct {
	ID           int    `db:"id" json:"id"`
	UserID       string `db:"user_id" json:"userID"`
	UserName     string `db:"user_name" json:"userName"`
	PasswordHash string `db:"password_hash" json:"-"`
	Email        string `db:"email" json:"email"`
	Phone        string `db:"phone" json:"phone"`
	IsAdmin      int    `db:"is_admin" json:"isadmin"`
	Picture      string `db:"picture" json:"picture"`
}

// Role 將 IsAdmin 轉為 Role；非 0/1 的值一律當作一般使用者
func (u User) Role() Role {
	if u.IsAdmin == int(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}
