package users

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/api"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/handler"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/middleware"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/service"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/view"
)

var (
	checkLogin      = service.CheckLogin
	checkPassword   = service.CheckPassword
	createUser      = service.CreateUser
	userIDAvailable = service.UserIDAvailable
	getUser         = service.GetUser
	updateProfile   = service.UpdateProfile
)

// SessionStore 建立、更新與銷毀登入會話
type SessionStore interface {
	Create(ctx context.Context, user *model.User) (string, *model.Session, error)
	Refresh(ctx context.Context, sess *model.Session, user *model.User) error
	Destroy(ctx context.Context, token string) error
	RevokeUser(ctx context.Context, userID int) error
	TTL() time.Duration
}

// @Summary     Login page
// @Tags        users
// @Produce     html
// @Success     200
// @Router      /login [get]
func LoginPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return handler.Render(c, view.Login, nil)
	}
}

// @Summary     Signup page
// @Tags        users
// @Produce     html
// @Success     200
// @Router      /signup [get]
func SignupPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return handler.Render(c, view.Signup, nil)
	}
}

// LoginHandler 驗證帳號密碼；成功時設定 SESSION cookie 並回傳導向路徑，失敗回傳 false
// @Summary     Login
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     plain
// @Param       userID   formData string true "帳號"
// @Param       password formData string true "密碼"
// @Success     200 {string} string "/index, /admin_index 或 false"
// @Failure     400 {boolean} boolean
// @Failure     500 {object} api.ErrorResponse
// @Router      /loginCheck.do [post]
func LoginHandler(db database.DB, sessions SessionStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := api.Bind(c, &req); err != nil {
			return api.FailBool(c, err)
		}
		ctx := c.Request().Context()
		user, err := checkLogin(ctx, db, req.UserID, req.Password)
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.String(http.StatusOK, "false")
		}
		if err != nil {
			return api.Fail(c, err)
		}
		token, sess, err := sessions.Create(ctx, user)
		if err != nil {
			return api.Fail(c, err)
		}
		middleware.SetSessionCookie(c, token, sessions.TTL())
		if sess.IsAdmin() {
			return c.String(http.StatusOK, "/admin_index")
		}
		return c.String(http.StatusOK, "/index")
	}
}

// LogoutHandler 清除會話後回到首頁
// @Summary     Logout
// @Tags        users
// @Success     302
// @Router      /logout.do [get]
func LogoutHandler(sessions SessionStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
			if err := sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
				return api.Fail(c, err)
			}
		}
		middleware.ClearSessionCookie(c)
		return handler.Redirect(c, "/index")
	}
}

// RegisterHandler 註冊一般使用者，成功後導向登入頁
// @Summary     Register
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
// @Router      /register.do [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
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
		return handler.Redirect(c, "/login")
	}
}

// CheckUserIDHandler 帳號可用時回傳 true
// @Summary     Check user id availability
// @Tags        users
// @Produce     json
// @Param       userID formData string true "帳號"
// @Success     200 {boolean} boolean
// @Router      /checkUserID.do [post]
func CheckUserIDHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ok, err := userIDAvailable(c.Request().Context(), db, c.FormValue("userID"))
		if err != nil {
			return api.FailBool(c, err)
		}
		return c.JSON(http.StatusOK, ok)
	}
}

// InfoPageHandler 個人資料頁
// @Summary     Profile page
// @Tags        users
// @Produce     html
// @Success     200
// @Failure     401 {object} api.ErrorResponse
// @Router      /user_info [get]
func InfoPageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		u, err := getUser(c.Request().Context(), db, middleware.CurrentSession(c).UserID)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.UserInfo, echo.Map{"user": u})
	}
}

// UpdateProfileHandler 修改個人資料；未上傳頭像時保留原圖，新密碼為空時不修改
// @Summary     Update profile
// @Tags        users
// @Accept      multipart/form-data
// @Param       userName    formData string true  "名稱"
// @Param       email       formData string false "Email"
// @Param       phone       formData string false "電話"
// @Param       passwordNew formData string false "新密碼"
// @Param       picture     formData file   false "頭像"
// @Success     302
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /updateUser.do [post]
func UpdateProfileHandler(db database.DB, sessions SessionStore, files handler.FileSaver) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ProfileRequest
		if err := api.Bind(c, &req); err != nil {
			return api.Fail(c, err)
		}
		picture, err := handler.SaveUpload(c, files, "picture")
		if err != nil {
			return api.Fail(c, err)
		}
		ctx := c.Request().Context()
		sess := middleware.CurrentSession(c)
		u, err := updateProfile(ctx, db, sess, service.UserInput{
			UserName: req.UserName,
			Password: req.Password,
			Email:    req.Email,
			Phone:    req.Phone,
			Picture:  picture,
		})
		if err != nil {
			handler.Discard(files, picture)
			return api.Fail(c, err)
		}
		if err := sessions.Refresh(ctx, sess, u); err != nil {
			return api.Fail(c, err)
		}
		return handler.Redirect(c, "/user_info")
	}
}

// CheckPasswordHandler 比對目前密碼
// @Summary     Check current password
// @Tags        users
// @Produce     json
// @Param       password query string true "目前密碼"
// @Success     200 {boolean} boolean
// @Failure     401 {object} api.ErrorResponse
// @Router      /checkPassword.do [get]
func CheckPasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ok, err := checkPassword(c.Request().Context(), db, middleware.CurrentSession(c), c.FormValue("password"))
		if err != nil {
			return api.FailBool(c, err)
		}
		return c.JSON(http.StatusOK, ok)
	}
}
