package users

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/api"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/handler"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/service"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/view"
)

var (
	listUsers         = service.ListUsers
	countUserPages    = service.CountUserPages
	updateUserByAdmin = service.UpdateUserByAdmin
	deleteUser        = service.DeleteUser
)

// ManagePageHandler 管理員使用者管理頁
// @Summary     User manage page
// @Tags        users
// @Produce     html
// @Success     200
// @Failure     401 {object} api.ErrorResponse
// @Router      /user_manage [get]
func ManagePageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		total, err := countUserPages(c.Request().Context(), db, service.AdminPageSize)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.UserManage, echo.Map{"total": total})
	}
}

// @Summary     User add page
// @Tags        users
// @Produce     html
// @Success     200
// @Router      /user_add [get]
func AddPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return handler.Render(c, view.UserAdd, nil)
	}
}

// EditPageHandler 管理員編輯使用者頁
// @Summary     User edit page
// @Tags        users
// @Produce     html
// @Param       id query int true "使用者 ID"
// @Success     200
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /user_edit [get]
func EditPageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "id")
		if err != nil {
			return api.Fail(c, err)
		}
		u, err := getUser(c.Request().Context(), db, id)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.UserEdit, echo.Map{"user": u})
	}
}

// ListHandler 一般使用者列表，每頁 10 筆
// @Summary     List users
// @Tags        users
// @Produce     json
// @Param       page query int false "頁碼 (從 1 開始)"
// @Success     200 {object} api.UserPage
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /userList.do [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := api.PageRequest(c, service.AdminPageSize)
		if err != nil {
			return api.Fail(c, err)
		}
		page, err := listUsers(c.Request().Context(), db, p)
		if err != nil {
			return api.Fail(c, err)
		}
		return c.JSON(http.StatusOK, api.NewPageResponse(page))
	}
}

// AddHandler 管理員新增一般使用者
// @Summary     Add user
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Param       userID   formData string true  "帳號"
// @Param       userName formData string true  "名稱"
// @Param       password formData string true  "密碼"
// @Param       email    formData string false "Email"
// @Param       phone    formData string false "電話"
// @Success     302
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /addUser.do [post]
func AddHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := api.Bind(c, &req); err != nil {
			return api.Fail(c, err)
		}
		_, err := createUser(c.Request().Context(), db, service.UserInput{
			UserID:   req.UserID,
			UserName: req.UserName,
			Password: req.Password,
			Email:    req.Email,
			Phone:    req.Phone,
		})
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Redirect(c, "/user_manage")
	}
}

// ModifyHandler 以 oldUserID 定位使用者後修改，密碼為空時不修改
// @Summary     Modify user
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Param       oldUserID formData string true  "原帳號"
// @Param       userID    formData string true  "新帳號"
// @Param       userName  formData string true  "名稱"
// @Param       password  formData string false "新密碼"
// @Param       email     formData string false "Email"
// @Param       phone     formData string false "電話"
// @Success     302
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /modifyUser.do [post]
func ModifyHandler(db database.DB, sessions SessionStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.AdminUserRequest
		if err := api.Bind(c, &req); err != nil {
			return api.Fail(c, err)
		}
		u, err := updateUserByAdmin(c.Request().Context(), db, req.OldUserID, service.UserInput{
			UserID:   req.UserID,
			UserName: req.UserName,
			Password: req.Password,
			Email:    req.Email,
			Phone:    req.Phone,
		})
		if err != nil {
			return api.Fail(c, err)
		}
		revoke(c, sessions, u.ID)
		return handler.Redirect(c, "/user_manage")
	}
}

// DeleteHandler 刪除使用者
// @Summary     Delete user
// @Tags        users
// @Produce     json
// @Param       id formData int true "使用者 ID"
// @Success     200 {boolean} boolean
// @Failure     400 {boolean} boolean
// @Failure     404 {boolean} boolean
// @Router      /delUser.do [post]
func DeleteHandler(db database.DB, sessions SessionStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "id")
		if err != nil {
			return api.FailBool(c, err)
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			return api.FailBool(c, err)
		}
		revoke(c, sessions, id)
		return c.JSON(http.StatusOK, true)
	}
}

// revoke 撤銷使用者所有會話，失敗只記錄
func revoke(c echo.Context, sessions SessionStore, userID int) {
	if err := sessions.RevokeUser(c.Request().Context(), userID); err != nil {
		zap.L().Warn("revoke sessions", zap.Int("user_id", userID), zap.Error(err))
	}
}
