package news

import (
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
	listNews       = service.ListNews
	countNewsPages = service.CountNewsPages
	getNews        = service.GetNews
	createNews     = service.CreateNews
	updateNews     = service.UpdateNews
	deleteNews     = service.DeleteNews
)

// DetailHandler 新聞內容頁
// @Summary     News detail page
// @Tags        news
// @Produce     html
// @Param       newsID query int true "新聞 ID"
// @Success     200
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /news [get]
func DetailHandler(db database.DB) echo.HandlerFunc {
	return editPage(db, view.News)
}

// EditPageHandler 管理員編輯新聞頁
// @Summary     News edit page
// @Tags        news
// @Produce     html
// @Param       newsID query int true "新聞 ID"
// @Success     200
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /news_edit [get]
func EditPageHandler(db database.DB) echo.HandlerFunc {
	return editPage(db, view.NewsEdit)
}

func editPage(db database.DB, name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "newsID")
		if err != nil {
			return api.Fail(c, err)
		}
		n, err := getNews(c.Request().Context(), db, id)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, name, echo.Map{"news": n})
	}
}

// ListPageHandler 新聞列表頁，附第一頁資料
// @Summary     News list page
// @Tags        news
// @Produce     html
// @Success     200
// @Failure     500 {object} api.ErrorResponse
// @Router      /news_list [get]
func ListPageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := listNews(c.Request().Context(), db, model.PageRequest{Size: service.PublicPageSize})
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.NewsList, echo.Map{
			"news":  page.Content,
			"total": page.TotalPages(),
		})
	}
}

// ManagePageHandler 管理員新聞管理頁
// @Summary     News manage page
// @Tags        news
// @Produce     html
// @Success     200
// @Failure     401 {object} api.ErrorResponse
// @Router      /news_manage [get]
func ManagePageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		total, err := countNewsPages(c.Request().Context(), db, service.AdminPageSize)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.NewsManage, echo.Map{"total": total})
	}
}

// AddPageHandler 管理員新增新聞頁
// @Summary     News add page
// @Tags        news
// @Produce     html
// @Success     200
// @Router      /news_add [get]
func AddPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return handler.Render(c, view.NewsAdd, nil)
	}
}

// ListHandler 公開新聞列表，每頁 5 筆
// @Summary     List news
// @Tags        news
// @Produce     json
// @Param       page query int false "頁碼 (從 1 開始)"
// @Success     200 {object} api.NewsPage
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /news/getNewsList [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return list(db, service.PublicPageSize)
}

// AdminListHandler 管理員新聞列表，每頁 10 筆
// @Summary     List news for administrators
// @Tags        news
// @Produce     json
// @Param       page query int false "頁碼 (從 1 開始)"
// @Success     200 {object} api.NewsPage
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /newsList.do [get]
func AdminListHandler(db database.DB) echo.HandlerFunc {
	return list(db, service.AdminPageSize)
}

func list(db database.DB, size int) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := api.PageRequest(c, size)
		if err != nil {
			return api.Fail(c, err)
		}
		page, err := listNews(c.Request().Context(), db, p)
		if err != nil {
			return api.Fail(c, err)
		}
		return c.JSON(http.StatusOK, api.NewPageResponse(page))
	}
}

// AddHandler 新增新聞
// @Summary     Add news
// @Tags        news
// @Accept      application/x-www-form-urlencoded
// @Param       title   formData string true "標題"
// @Param       content formData string true "內容"
// @Success     302
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /addNews.do [post]
func AddHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.NewsRequest
		if err := api.Bind(c, &req); err != nil {
			return api.Fail(c, err)
		}
		if _, err := createNews(c.Request().Context(), db, req.Title, req.Content); err != nil {
			return api.Fail(c, err)
		}
		return handler.Redirect(c, "/news_manage")
	}
}

// ModifyHandler 修改新聞，發布時間不變
// @Summary     Modify news
// @Tags        news
// @Accept      application/x-www-form-urlencoded
// @Param       newsID  formData int    true "新聞 ID"
// @Param       title   formData string true "標題"
// @Param       content formData string true "內容"
// @Success     302
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /modifyNews.do [post]
func ModifyHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "newsID")
		if err != nil {
			return api.Fail(c, err)
		}
		var req api.NewsRequest
		if err := api.Bind(c, &req); err != nil {
			return api.Fail(c, err)
		}
		if _, err := updateNews(c.Request().Context(), db, id, req.Title, req.Content); err != nil {
			return api.Fail(c, err)
		}
		return handler.Redirect(c, "/news_manage")
	}
}

// DeleteHandler 刪除新聞
// @Summary     Delete news
// @Tags        news
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       newsID formData int true "新聞 ID"
// @Success     200 {boolean} boolean
// @Failure     400 {boolean} boolean
// @Failure     404 {boolean} boolean
// @Router      /delNews.do [post]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "newsID")
		if err != nil {
			return api.FailBool(c, err)
		}
		if err := deleteNews(c.Request().Context(), db, id); err != nil {
			return api.FailBool(c, err)
		}
		return c.JSON(http.StatusOK, true)
	}
}
