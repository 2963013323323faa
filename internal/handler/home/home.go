package home

import (
	"github.com/labstack/echo/v4"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/api"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/handler"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/service"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/view"
)

var (
	listNews            = service.ListNews
	listVenues          = service.ListVenues
	listMessagesByState = service.ListMessagesByState
)

// IndexHandler 首頁
// @Summary     Index page
// @Description 顯示第一頁新聞、場館與已通過的留言
// @Tags        pages
// @Produce     html
// @Success     200
// @Failure     500 {object} api.ErrorResponse
// @Router      /index [get]
func IndexHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		first := model.PageRequest{Page: 0, Size: service.PublicPageSize}

		news, err := listNews(ctx, db, first)
		if err != nil {
			return api.Fail(c, err)
		}
		venues, err := listVenues(ctx, db, first)
		if err != nil {
			return api.Fail(c, err)
		}
		messages, err := listMessagesByState(ctx, db, model.MessagePassed, first)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.Index, echo.Map{
			"news":     news.Content,
			"venues":   venues.Content,
			"messages": messages.Content,
		})
	}
}

// AdminIndexHandler 管理員首頁
// @Summary     Admin index page
// @Tags        pages
// @Produce     html
// @Success     200
// @Failure     401 {object} api.ErrorResponse
// @Router      /admin_index [get]
func AdminIndexHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return handler.Render(c, view.AdminIndex, nil)
	}
}
