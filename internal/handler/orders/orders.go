package orders

import (
	"context"
	"net/http"

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
	listUserOrders      = service.ListUserOrders
	countUserOrderPages = service.CountUserOrderPages
	getOrder            = service.GetOrder
	getVenue            = service.GetVenue
	venueOrders         = service.VenueOrders
	submitOrder         = service.SubmitOrder
	modifyOrder         = service.ModifyOrder
	finishOrder         = service.FinishOrder
	deleteOrder         = service.DeleteOrder
)

// ManagePageHandler 我的訂單頁
// @Summary     My orders page
// @Tags        orders
// @Produce     html
// @Success     200
// @Failure     401 {object} api.ErrorResponse
// @Router      /order_manage [get]
func ManagePageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		total, err := countUserOrderPages(c.Request().Context(), db, middleware.CurrentSession(c), service.PublicPageSize)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.OrderManage, echo.Map{"total": total})
	}
}

// UserListHandler 登入者自己的訂單，每頁 5 筆
// @Summary     List own orders
// @Tags        orders
// @Produce     json
// @Param       page query int false "頁碼 (從 1 開始)"
// @Success     200 {object} api.OrderPage
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /getOrderList.do [get]
func UserListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := api.PageRequest(c, service.PublicPageSize)
		if err != nil {
			return api.Fail(c, err)
		}
		page, err := listUserOrders(c.Request().Context(), db, middleware.CurrentSession(c), p)
		if err != nil {
			return api.Fail(c, err)
		}
		return c.JSON(http.StatusOK, api.NewPageResponse(page))
	}
}

// PlacePageHandler 預約頁
// @Summary     Booking page
// @Tags        orders
// @Produce     html
// @Param       venueID query int true "場館 ID"
// @Success     200
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /order_place.do [get]
func PlacePageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "venueID")
		if err != nil {
			return api.Fail(c, err)
		}
		v, err := getVenue(c.Request().Context(), db, id)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.OrderPlace, echo.Map{"venue": v})
	}
}

// EditPageHandler 修改訂單頁，只有下單者可進入
// @Summary     Order edit page
// @Tags        orders
// @Produce     html
// @Param       orderID query int true "訂單 ID"
// @Success     200
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /modifyOrder.do [get]
func EditPageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "orderID")
		if err != nil {
			return api.Fail(c, err)
		}
		ctx := c.Request().Context()
		o, err := getOrder(ctx, db, id)
		if err != nil {
			return api.Fail(c, err)
		}
		if o.UserID != middleware.CurrentSession(c).LoginID {
			return api.Fail(c, service.ErrForbidden)
		}
		v, err := getVenue(ctx, db, o.VenueID)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.OrderEdit, echo.Map{"order": o, "venue": v})
	}
}

// VenueOrdersHandler 某場館某一天的預約，用來顯示可預約時段
// @Summary     Venue bookings for a day
// @Tags        orders
// @Produce     json
// @Param       venueName query string true "場館名稱"
// @Param       date      query string true "日期 YYYY-MM-DD"
// @Success     200 {object} model.VenueOrder
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /order/getOrderList [get]
func VenueOrdersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		vo, err := venueOrders(c.Request().Context(), db, c.QueryParam("venueName"), c.QueryParam("date"))
		if err != nil {
			return api.Fail(c, err)
		}
		return c.JSON(http.StatusOK, vo)
	}
}

func bindOrder(c echo.Context) (service.OrderInput, error) {
	var req api.OrderRequest
	if err := api.Bind(c, &req); err != nil {
		return service.OrderInput{}, err
	}
	hours, err := api.ParseHours(c.FormValue("hours"))
	if err != nil {
		return service.OrderInput{}, err
	}
	return service.OrderInput{
		VenueName: req.VenueName,
		Date:      req.Date,
		StartTime: req.StartTime,
		Hours:     hours,
	}, nil
}

// AddHandler 送出預約
// @Summary     Submit order
// @Tags        orders
// @Accept      application/x-www-form-urlencoded
// @Param       venueName formData string true "場館名稱"
// @Param       date      formData string true "日期 YYYY-MM-DD"
// @Param       startTime formData string true "開始時間 HH:mm"
// @Param       hours     formData int    true "時數 1-24"
// @Success     302
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /addOrder.do [post]
func AddHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		in, err := bindOrder(c)
		if err != nil {
			return api.Fail(c, err)
		}
		if _, err := submitOrder(c.Request().Context(), db, middleware.CurrentSession(c), in); err != nil {
			return api.Fail(c, err)
		}
		return handler.Redirect(c, "/order_manage")
	}
}

// ModifyHandler 修改預約，修改後重新等待審核
// @Summary     Modify order
// @Tags        orders
// @Accept      application/x-www-form-urlencoded
// @Param       orderID   formData int    true "訂單 ID"
// @Param       venueName formData string true "場館名稱"
// @Param       date      formData string true "日期 YYYY-MM-DD"
// @Param       startTime formData string true "開始時間 HH:mm"
// @Param       hours     formData int    true "時數 1-24"
// @Success     302
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /modifyOrder [post]
func ModifyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "orderID")
		if err != nil {
			return api.Fail(c, err)
		}
		in, err := bindOrder(c)
		if err != nil {
			return api.Fail(c, err)
		}
		if _, err := modifyOrder(c.Request().Context(), db, middleware.CurrentSession(c), id, in); err != nil {
			return api.Fail(c, err)
		}
		return handler.Redirect(c, "/order_manage")
	}
}

type sessionAction func(ctx context.Context, db database.DB, sess *model.Session, id int) error

func orderAction(db database.DB, fn sessionAction) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "orderID")
		if err != nil {
			return api.Fail(c, err)
		}
		if err := fn(c.Request().Context(), db, middleware.CurrentSession(c), id); err != nil {
			return api.Fail(c, err)
		}
		return c.JSON(http.StatusOK, true)
	}
}

// FinishHandler 已審核的訂單結案
// @Summary     Finish order
// @Tags        orders
// @Produce     json
// @Param       orderID formData int true "訂單 ID"
// @Success     200 {boolean} boolean
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /finishOrder.do [post]
func FinishHandler(db database.DB) echo.HandlerFunc {
	return orderAction(db, func(ctx context.Context, db database.DB, sess *model.Session, id int) error {
		return finishOrder(ctx, db, sess, id)
	})
}

// DeleteHandler 刪除訂單
// @Summary     Delete order
// @Tags        orders
// @Produce     json
// @Param       orderID formData int true "訂單 ID"
// @Success     200 {boolean} boolean
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /delOrder.do [post]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return orderAction(db, func(ctx context.Context, db database.DB, sess *model.Session, id int) error {
		return deleteOrder(ctx, db, sess, id)
	})
}
