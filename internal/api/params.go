package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/service"
)

func badParam(name, raw string) error {
	return fmt.Errorf("%w: %s must be a positive integer, got %q", service.ErrInvalidArgument, name, raw)
}

// ParsePage 讀取 1 起算的 page 參數，缺省為 1
func ParsePage(c echo.Context) (int, error) {
	raw := strings.TrimSpace(c.QueryParam("page"))
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 1 {
		return 0, badParam("page", raw)
	}
	return int(n), nil
}

// PageRequest 解析 page 並轉為 0 起算的查詢條件
func PageRequest(c echo.Context, size int) (model.PageRequest, error) {
	page, err := ParsePage(c)
	if err != nil {
		return model.PageRequest{}, err
	}
	return model.PageRequest{Page: page - 1, Size: size}, nil
}

// ParseID 從查詢字串或表單讀取必填的正整數 id
func ParseID(c echo.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 1 {
		return 0, badParam(name, raw)
	}
	return int(n), nil
}

// ParsePrice 價格為 0 到 int32 上限的整數，超出範圍不截斷
func ParsePrice(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: price must be a non-negative integer, got %q", service.ErrInvalidArgument, raw)
	}
	return int(n), nil
}

// ParseHours 預約時數為 1 到 24
func ParseHours(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 1 || n > 24 {
		return 0, fmt.Errorf("%w: hours must be between 1 and 24, got %q", service.ErrInvalidArgument, raw)
	}
	return int(n), nil
}
