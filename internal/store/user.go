package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
)

const userColumns = `id, user_id, user_name, password_hash, email, phone, is_admin, picture`

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(
		&u.ID,
		&u.UserID,
		&u.UserName,
		&u.PasswordHash,
		&u.Email,
		&u.Phone,
		&u.IsAdmin,
		&u.Picture,
	)
}

// ListUsersByRole 依 id 由小到大
func ListUsersByRole(ctx context.Context, db database.DB, role model.Role, p model.PageRequest) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE is_admin = $1
		 ORDER BY id ASC
		 LIMIT $2 OFFSET $3`,
		int(role), p.Size, p.Offset(),
	)
	if err != nil {
		return nil, wrapErr("ListUsersByRole", err)
	}
	list, err := collect(rows, scanUser)
	if err != nil {
		return nil, wrapErr("ListUsersByRole", err)
	}
	return list, nil
}

func CountUsersByRole(ctx context.Context, db database.DB, role model.Role) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_admin = $1`, int(role)).Scan(&n); err != nil {
		return 0, wrapErr("CountUsersByRole", err)
	}
	return n, nil
}

func CountUsersByUserID(ctx context.Context, db database.DB, userID string) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, wrapErr("CountUsersByUserID", err)
	}
	return n, nil
}

func GetUserByID(ctx context.Context, db database.DB, id int) (*model.User, error) {
	u := &model.User{}
	row := db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err := scanUser(row, u); err != nil {
		return nil, wrapErr("GetUserByID", err)
	}
	return u, nil
}

// GetUserByUserID 以登入帳號查詢
func GetUserByUserID(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	u := &model.User{}
	row := db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	if err := scanUser(row, u); err != nil {
		return nil, wrapErr("GetUserByUserID", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (user_id, user_name, password_hash, email, phone, is_admin, picture)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		u.UserID,
		u.UserName,
		u.PasswordHash,
		u.Email,
		u.Phone,
		u.IsAdmin,
		u.Picture,
	)
	if err := row.Scan(&u.ID); err != nil {
		return nil, wrapErr("CreateUser", err)
	}
	return u, nil
}

// UpdateUser 更新基本資料，密碼另由 UpdateUserPassword 處理
func UpdateUser(ctx context.Context, db database.DB, u *model.User) error {
	tag, err := db.Exec(ctx,
		`UPDATE users
		 SET user_id = $1, user_name = $2, email = $3, phone = $4, picture = $5
		 WHERE id = $6`,
		u.UserID,
		u.UserName,
		u.Email,
		u.Phone,
		u.Picture,
		u.ID,
	)
	if err != nil {
		return wrapErr("UpdateUser", err)
	}
	return requireAffected("UpdateUser", tag)
}

func UpdateUserPassword(ctx context.Context, db database.DB, id int, hash string) error {
	tag, err := db.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, hash, id)
	if err != nil {
		return wrapErr("UpdateUserPassword", err)
	}
	return requireAffected("UpdateUserPassword", tag)
}

func DeleteUser(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return wrapErr("DeleteUser", err)
	}
	return requireAffected("DeleteUser", tag)
}
