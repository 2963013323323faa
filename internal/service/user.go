package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/store"
)

var (
	listUsersByRole    = store.ListUsersByRole
	countUsersByRole   = store.CountUsersByRole
	countUsersByUserID = store.CountUsersByUserID
	getUserByID        = store.GetUserByID
	getUserByUserID    = store.GetUserByUserID
	createUser         = store.CreateUser
	updateUser         = store.UpdateUser
	updateUserPassword = store.UpdateUserPassword
	deleteUser         = store.DeleteUser
	hashPassword       = HashPassword
)

// UserInput 註冊、新增與編輯使用者共用的欄位，Password 為空表示不修改
type UserInput struct {
	UserID   string
	UserName string
	Password string
	Email    string
	Phone    string
	Picture  string
}

func (in *UserInput) normalize() {
	in.UserID = strings.TrimSpace(in.UserID)
	in.UserName = strings.TrimSpace(in.UserName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
}

// ListUsers 只列出一般使用者，依 id 由小到大
func ListUsers(ctx context.Context, db database.DB, p model.PageRequest) (*model.Page[model.User], error) {
	return listPage("ListUsers", p,
		func() ([]model.User, error) { return listUsersByRole(ctx, db, model.RoleUser, p) },
		func() (int, error) { return countUsersByRole(ctx, db, model.RoleUser) },
	)
}

func CountUserPages(ctx context.Context, db database.DB, size int) (int, error) {
	n, err := countUsersByRole(ctx, db, model.RoleUser)
	if err != nil {
		return 0, storeErr("CountUserPages", err)
	}
	return model.Page[model.User]{TotalElements: n, Size: size}.TotalPages(), nil
}

func GetUser(ctx context.Context, db database.DB, id int) (*model.User, error) {
	if err := checkID("id", id); err != nil {
		return nil, err
	}
	u, err := getUserByID(ctx, db, id)
	if err != nil {
		return nil, storeErr("GetUser", err)
	}
	return u, nil
}

func GetUserByUserID(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalid("userID is required")
	}
	u, err := getUserByUserID(ctx, db, userID)
	if err != nil {
		return nil, storeErr("GetUserByUserID", err)
	}
	return u, nil
}

// UserIDAvailable 帳號尚未被註冊時回傳 true
func UserIDAvailable(ctx context.Context, db database.DB, userID string) (bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return false, nil
	}
	n, err := countUsersByUserID(ctx, db, userID)
	if err != nil {
		return false, storeErr("UserIDAvailable", err)
	}
	return n == 0, nil
}

// CreateUser 註冊或由管理員新增一般使用者
func CreateUser(ctx context.Context, db database.DB, in UserInput) (*model.User, error) {
	return createWithRole(ctx, db, in, model.RoleUser)
}

func createWithRole(ctx context.Context, db database.DB, in UserInput, role model.Role) (*model.User, error) {
	in.normalize()
	switch {
	case in.UserID == "":
		return nil, invalid("userID is required")
	case in.UserName == "":
		return nil, invalid("userName is required")
	case in.Password == "":
		return nil, invalid("password is required")
	}
	ok, err := UserIDAvailable(ctx, db, in.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, conflict("userID %q already exists", in.UserID)
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u, err := createUser(ctx, db, &model.User{
		UserID:       in.UserID,
		UserName:     in.UserName,
		PasswordHash: hash,
		Email:        in.Email,
		Phone:        in.Phone,
		IsAdmin:      int(role),
		Picture:      in.Picture,
	})
	if err != nil {
		return nil, storeErr("CreateUser", err)
	}
	return u, nil
}

// EnsureAdmin 帳號不存在時建立管理員，已存在則不變動
func EnsureAdmin(ctx context.Context, db database.DB, userID, password string) (bool, error) {
	ok, err := UserIDAvailable(ctx, db, userID)
	if err != nil || !ok {
		return false, err
	}
	if _, err := createWithRole(ctx, db, UserInput{UserID: userID, UserName: userID, Password: password}, model.RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}

// CheckLogin 帳號不存在與密碼錯誤一律回傳 ErrInvalidCredentials
func CheckLogin(ctx context.Context, db database.DB, userID, password string) (*model.User, error) {
	u, err := getUserByUserID(ctx, db, strings.TrimSpace(userID))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, storeErr("CheckLogin", err)
	}
	if err := AuthenticateUser(u, password); err != nil {
		return nil, err
	}
	return u, nil
}

// CheckPassword 比對登入者目前的密碼
func CheckPassword(ctx context.Context, db database.DB, sess *model.Session, password string) (bool, error) {
	if sess == nil {
		return false, ErrUnauthenticated
	}
	u, err := getUserByID(ctx, db, sess.UserID)
	if err != nil {
		return false, storeErr("CheckPassword", err)
	}
	return AuthenticateUser(u, password) == nil, nil
}

func applyUpdate(ctx context.Context, db database.DB, op string, u *model.User, in UserInput) (*model.User, error) {
	if in.UserName == "" {
		return nil, invalid("userName is required")
	}
	var hash string
	if in.Password != "" {
		h, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	u.UserName = in.UserName
	u.Email = in.Email
	u.Phone = in.Phone
	if in.Picture != "" {
		u.Picture = in.Picture
	}
	if err := updateUser(ctx, db, u); err != nil {
		return nil, storeErr(op, err)
	}
	if hash != "" {
		if err := updateUserPassword(ctx, db, u.ID, hash); err != nil {
			return nil, storeErr(op, err)
		}
		u.PasswordHash = hash
	}
	return u, nil
}

// UpdateProfile 登入者修改自己的資料，帳號不可變更；Picture 為空時保留原圖
func UpdateProfile(ctx context.Context, db database.DB, sess *model.Session, in UserInput) (*model.User, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}
	in.normalize()
	u, err := getUserByID(ctx, db, sess.UserID)
	if err != nil {
		return nil, storeErr("UpdateProfile", err)
	}
	return applyUpdate(ctx, db, "UpdateProfile", u, in)
}

// UpdateUserByAdmin 以舊帳號定位使用者，新帳號若被占用回傳 ErrConflict
func UpdateUserByAdmin(ctx context.Context, db database.DB, oldUserID string, in UserInput) (*model.User, error) {
	in.normalize()
	u, err := GetUserByUserID(ctx, db, oldUserID)
	if err != nil {
		return nil, err
	}
	if in.UserID == "" {
		return nil, invalid("userID is required")
	}
	if in.UserID != u.UserID {
		ok, err := UserIDAvailable(ctx, db, in.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, conflict("userID %q already exists", in.UserID)
		}
		u.UserID = in.UserID
	}
	return applyUpdate(ctx, db, "UpdateUserByAdmin", u, in)
}

func DeleteUser(ctx context.Context, db database.DB, id int) error {
	if err := checkID("id", id); err != nil {
		return err
	}
	if err := deleteUser(ctx, db, id); err != nil {
		return storeErr("DeleteUser", err)
	}
	return nil
}
