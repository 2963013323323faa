package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/api"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/service"
)

const (
	SessionCookie     = "SESSION"
	ContextSessionKey = "session"
)

// SessionResolver 由 cookie 中的 token 取回會話
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*model.Session, error)
}

// LoadSession 解析 SESSION cookie，成功時把會話放入 context；失敗一律視為未登入
func LoadSession(r SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			sess, err := r.Resolve(c.Request().Context(), cookie.Value)
			switch {
			case err == nil:
				c.Set(ContextSessionKey, sess)
			case errors.Is(err, service.ErrUnauthenticated):
				ClearSessionCookie(c)
			default:
				zap.L().Warn("resolve session", zap.Error(err))
			}
			return next(c)
		}
	}
}

// CurrentSession 未登入時回傳 nil
func CurrentSession(c echo.Context) *model.Session {
	sess, _ := c.Get(ContextSessionKey).(*model.Session)
	return sess
}

func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentSession(c) == nil {
			return api.Fail(c, service.ErrUnauthenticated)
		}
		return next(c)
	}
}

// RequireAdmin 未登入或非管理員皆回 401
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !CurrentSession(c).IsAdmin() {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "admin privileges required"})
		}
		return next(c)
	}
}

func SetSessionCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
