package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/service"
)

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"invalid argument: page must be a positive integer"`
}

// StatusFor 將服務層錯誤對應到 HTTP 狀態碼
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func logFailure(c echo.Context, status int, err error) {
	if status < http.StatusInternalServerError {
		return
	}
	zap.L().Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
}

// Fail 以 ErrorResponse 回應錯誤；5xx 只回傳通用訊息，留言不存在例外
func Fail(c echo.Context, err error) error {
	status := StatusFor(err)
	logFailure(c, status, err)
	msg := err.Error()
	if status == http.StatusInternalServerError && !errors.Is(err, service.ErrMessageNotExist) {
		msg = "internal server error"
	}
	return c.JSON(status, ErrorResponse{Message: msg})
}

// FailBool 給回傳 true/false 的 AJAX 端點使用
func FailBool(c echo.Context, err error) error {
	status := StatusFor(err)
	logFailure(c, status, err)
	return c.JSON(status, false)
}
