package orders

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/api"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/handler"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/service"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/view"
)

var (
	listOrdersByState = service.ListOrdersByState
	countOrderPages   = service.CountOrderPages
	listAuditedOrders = service.ListAuditedOrders
	confirmOrder      = service.ConfirmOrder
	rejectOrder       = service.RejectOrder
)

// ReservationPageHandler 管理員預約審核頁，附已審核的訂單
// @Summary     Reservation manage page
// @Tags        orders
// @Produce     html
// @Success     200
// @Failure     401 {object} api.ErrorResponse
// @Router      /reservation_manage [get]
func ReservationPageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		total, err := countOrderPages(ctx, db, model.OrderSubmitted, service.AdminPageSize)
		if err != nil {
			return api.Fail(c, err)
		}
		audited, err := listAuditedOrders(ctx, db)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.ReservationManage, echo.Map{
			"total":   total,
			"audited": audited,
		})
	}
}

// PendingListHandler 等待審核的訂單，每頁 10 筆
// @Summary     List orders awaiting audit
// @Tags        orders
// @Produce     json
// @Param       page query int false "頁碼 (從 1 開始)"
// @Success     200 {object} api.OrderPage
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /admin/getOrderList.do [get]
func PendingListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := api.PageRequest(c, service.AdminPageSize)
		if err != nil {
			return api.Fail(c, err)
		}
		page, err := listOrdersByState(c.Request().Context(), db, model.OrderSubmitted, p)
		if err != nil {
			return api.Fail(c, err)
		}
		return c.JSON(http.StatusOK, api.NewPageResponse(page))
	}
}

func audit(db database.DB, fn func(context.Context, database.DB, int) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "orderID")
		if err != nil {
			return api.Fail(c, err)
		}
		if err := fn(c.Request().Context(), db, id); err != nil {
			return api.Fail(c, err)
		}
		return c.JSON(http.StatusOK, true)
	}
}

// PassHandler 審核通過
// @Summary     Approve order
// @Tags        orders
// @Produce     json
// @Param       orderID formData int true "訂單 ID"
// @Success     200 {boolean} boolean
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /passOrder.do [post]
func PassHandler(db database.DB) echo.HandlerFunc {
	return audit(db, func(ctx context.Context, db database.DB, id int) error {
		return confirmOrder(ctx, db, id)
	})
}

// RejectHandler 駁回
// @Summary     Reject order
// @Tags        orders
// @Produce     json
// @Param       orderID formData int true "訂單 ID"
// @Success     200 {boolean} boolean
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /rejectOrder.do [post]
func RejectHandler(db database.DB) echo.HandlerFunc {
	return audit(db, func(ctx context.Context, db database.DB, id int) error {
		return rejectOrder(ctx, db, id)
	})
}
