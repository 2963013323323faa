package messages

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
	listMessagesByState   = service.ListMessagesByState
	listUserMessages      = service.ListUserMessages
	countMessagePages     = service.CountMessagePages
	countUserMessagePages = service.CountUserMessagePages
	createMessage         = service.CreateMessage
	updateMessage         = service.UpdateMessage
	confirmMessage        = service.ConfirmMessage
	rejectMessage         = service.RejectMessage
	deleteMessage         = service.DeleteMessage
)

// ListPageHandler 留言板頁面，附公開留言與自己留言的總頁數
// @Summary     Message board page
// @Tags        messages
// @Produce     html
// @Success     200
// @Failure     401 {object} api.ErrorResponse
// @Router      /message_list [get]
func ListPageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		total, err := countMessagePages(ctx, db, model.MessagePassed, service.PublicPageSize)
		if err != nil {
			return api.Fail(c, err)
		}
		userTotal, err := countUserMessagePages(ctx, db, middleware.CurrentSession(c), service.PublicPageSize)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.MessageList, echo.Map{
			"total":      total,
			"user_total": userTotal,
		})
	}
}

// ManagePageHandler 管理員留言審核頁
// @Summary     Message moderation page
// @Tags        messages
// @Produce     html
// @Success     200
// @Failure     401 {object} api.ErrorResponse
// @Router      /message_manage [get]
func ManagePageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		total, err := countMessagePages(c.Request().Context(), db, model.MessageWaiting, service.AdminPageSize)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.MessageManage, echo.Map{"total": total})
	}
}

type lister func(ctx context.Context, c echo.Context, p model.PageRequest) (*model.Page[model.MessageVo], error)

func list(size int, fn lister) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := api.PageRequest(c, size)
		if err != nil {
			return api.Fail(c, err)
		}
		page, err := fn(c.Request().Context(), c, p)
		if err != nil {
			return api.Fail(c, err)
		}
		return c.JSON(http.StatusOK, api.NewPageResponse(page))
	}
}

// ListHandler 已通過審核的留言，每頁 5 筆
// @Summary     List approved messages
// @Tags        messages
// @Produce     json
// @Param       page query int false "頁碼 (從 1 開始)"
// @Success     200 {object} api.MessagePage
// @Failure     400 {object} api.ErrorResponse
// @Router      /message/getMessageList [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return list(service.PublicPageSize, func(ctx context.Context, _ echo.Context, p model.PageRequest) (*model.Page[model.MessageVo], error) {
		return listMessagesByState(ctx, db, model.MessagePassed, p)
	})
}

// UserListHandler 登入者自己的留言，每頁 5 筆
// @Summary     List own messages
// @Tags        messages
// @Produce     json
// @Param       page query int false "頁碼 (從 1 開始)"
// @Success     200 {object} api.MessagePage
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /message/findUserList [get]
func UserListHandler(db database.DB) echo.HandlerFunc {
	return list(service.PublicPageSize, func(ctx context.Context, c echo.Context, p model.PageRequest) (*model.Page[model.MessageVo], error) {
		return listUserMessages(ctx, db, middleware.CurrentSession(c), p)
	})
}

// AdminListHandler 等待審核的留言，每頁 10 筆
// @Summary     List messages awaiting moderation
// @Tags        messages
// @Produce     json
// @Param       page query int false "頁碼 (從 1 開始)"
// @Success     200 {object} api.MessagePage
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /messageList.do [get]
func AdminListHandler(db database.DB) echo.HandlerFunc {
	return list(service.AdminPageSize, func(ctx context.Context, _ echo.Context, p model.PageRequest) (*model.Page[model.MessageVo], error) {
		return listMessagesByState(ctx, db, model.MessageWaiting, p)
	})
}

// SendHandler 發表留言，送出後等待審核
// @Summary     Send message
// @Tags        messages
// @Accept      application/x-www-form-urlencoded
// @Param       content formData string true "留言內容"
// @Success     302
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /sendMessage.do [post]
func SendHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.MessageRequest
		if err := api.Bind(c, &req); err != nil {
			return api.Fail(c, err)
		}
		if _, err := createMessage(c.Request().Context(), db, middleware.CurrentSession(c), req.Content); err != nil {
			return api.Fail(c, err)
		}
		return handler.Redirect(c, "/message_list")
	}
}

// ModifyHandler 修改自己的留言，修改後重新等待審核
// @Summary     Modify own message
// @Tags        messages
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       messageID formData int    true "留言 ID"
// @Param       content   formData string true "留言內容"
// @Success     200 {boolean} boolean
// @Failure     400 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /modifyMessage.do [post]
func ModifyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "messageID")
		if err != nil {
			return api.Fail(c, err)
		}
		var req api.MessageRequest
		if err := api.Bind(c, &req); err != nil {
			return api.Fail(c, err)
		}
		if _, err := updateMessage(c.Request().Context(), db, middleware.CurrentSession(c), id, req.Content); err != nil {
			return api.Fail(c, err)
		}
		return c.JSON(http.StatusOK, true)
	}
}

// DeleteHandler 作者或管理員刪除留言
// @Summary     Delete message
// @Tags        messages
// @Produce     json
// @Param       messageID formData int true "留言 ID"
// @Success     200 {boolean} boolean
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /delMessage.do [post]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "messageID")
		if err != nil {
			return api.Fail(c, err)
		}
		if err := deleteMessage(c.Request().Context(), db, middleware.CurrentSession(c), id); err != nil {
			return api.Fail(c, err)
		}
		return c.JSON(http.StatusOK, true)
	}
}

func moderate(db database.DB, fn func(context.Context, database.DB, int) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "messageID")
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
// @Summary     Approve message
// @Tags        messages
// @Produce     json
// @Param       messageID formData int true "留言 ID"
// @Success     200 {boolean} boolean
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse "message does not exist"
// @Router      /passMessage.do [post]
func PassHandler(db database.DB) echo.HandlerFunc {
	return moderate(db, func(ctx context.Context, db database.DB, id int) error {
		return confirmMessage(ctx, db, id)
	})
}

// RejectHandler 審核不通過
// @Summary     Reject message
// @Tags        messages
// @Produce     json
// @Param       messageID formData int true "留言 ID"
// @Success     200 {boolean} boolean
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse "message does not exist"
// @Router      /rejectMessage.do [post]
func RejectHandler(db database.DB) echo.HandlerFunc {
	return moderate(db, func(ctx context.Context, db database.DB, id int) error {
		return rejectMessage(ctx, db, id)
	})
}
