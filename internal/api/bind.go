package api

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/service"
)

// Bind 綁定表單並驗證，任何失敗皆視為參數錯誤
func Bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: invalid form data", service.ErrInvalidArgument)
	}
	if err := c.Validate(req); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidArgument, err)
	}
	return nil
}
