package view

import (
	"io"

	"github.com/labstack/echo/v4"
)

// Recorder 記錄最後一次渲染的頁面與資料，供 handler 測試使用
type Recorder struct {
	Name string
	Data echo.Map
	Err  error
}

func (r *Recorder) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	r.Name = name
	r.Data, _ = data.(echo.Map)
	return r.Err
}
