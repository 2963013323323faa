package venues

import (
	"errors"
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
	listVenues         = service.ListVenues
	countVenuePages    = service.CountVenuePages
	getVenue           = service.GetVenue
	venueNameAvailable = service.VenueNameAvailable
	createVenue        = service.CreateVenue
	updateVenue        = service.UpdateVenue
	deleteVenue        = service.DeleteVenue
)

// DetailHandler 場館介紹頁
// @Summary     Venue detail page
// @Tags        venues
// @Produce     html
// @Param       venueID query int true "場館 ID"
// @Success     200
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /venue [get]
func DetailHandler(db database.DB) echo.HandlerFunc {
	return venuePage(db, view.Venue)
}

// EditPageHandler 管理員編輯場館頁
// @Summary     Venue edit page
// @Tags        venues
// @Produce     html
// @Param       venueID query int true "場館 ID"
// @Success     200
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /venue_edit [get]
func EditPageHandler(db database.DB) echo.HandlerFunc {
	return venuePage(db, view.VenueEdit)
}

func venuePage(db database.DB, name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "venueID")
		if err != nil {
			return api.Fail(c, err)
		}
		v, err := getVenue(c.Request().Context(), db, id)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, name, echo.Map{"venue": v})
	}
}

// ListPageHandler 場館列表頁
// @Summary     Venue list page
// @Tags        venues
// @Produce     html
// @Success     200
// @Router      /venue_list [get]
func ListPageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := listVenues(c.Request().Context(), db, model.PageRequest{Size: service.PublicPageSize})
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.VenueList, echo.Map{
			"venues": page.Content,
			"total":  page.TotalPages(),
		})
	}
}

// ManagePageHandler 管理員場館管理頁
// @Summary     Venue manage page
// @Tags        venues
// @Produce     html
// @Success     200
// @Router      /venue_manage [get]
func ManagePageHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		total, err := countVenuePages(c.Request().Context(), db, service.AdminPageSize)
		if err != nil {
			return api.Fail(c, err)
		}
		return handler.Render(c, view.VenueManage, echo.Map{"total": total})
	}
}

// @Summary     Venue add page
// @Tags        venues
// @Produce     html
// @Success     200
// @Router      /venue_add [get]
func AddPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return handler.Render(c, view.VenueAdd, nil)
	}
}

// ListHandler 公開場館列表，每頁 5 筆
// @Summary     List venues
// @Tags        venues
// @Produce     json
// @Param       page query int false "頁碼 (從 1 開始)"
// @Success     200 {object} api.VenuePage
// @Failure     400 {object} api.ErrorResponse
// @Router      /venuelist/getVenueList [get]
func ListHandler(db database.DB) echo.HandlerFunc {
	return list(db, service.PublicPageSize)
}

// AdminListHandler 管理員場館列表，每頁 10 筆
// @Summary     List venues for administrators
// @Tags        venues
// @Produce     json
// @Param       page query int false "頁碼 (從 1 開始)"
// @Success     200 {object} api.VenuePage
// @Failure     400 {object} api.ErrorResponse
// @Router      /venueList.do [get]
func AdminListHandler(db database.DB) echo.HandlerFunc {
	return list(db, service.AdminPageSize)
}

func list(db database.DB, size int) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := api.PageRequest(c, size)
		if err != nil {
			return api.Fail(c, err)
		}
		page, err := listVenues(c.Request().Context(), db, p)
		if err != nil {
			return api.Fail(c, err)
		}
		return c.JSON(http.StatusOK, api.NewPageResponse(page))
	}
}

// bindVenue 讀取表單欄位、價格與上傳圖片
func bindVenue(c echo.Context, files handler.FileSaver) (*model.Venue, error) {
	var req api.VenueRequest
	if err := api.Bind(c, &req); err != nil {
		return nil, err
	}
	price, err := api.ParsePrice(c.FormValue("price"))
	if err != nil {
		return nil, err
	}
	picture, err := handler.SaveUpload(c, files, "picture")
	if err != nil {
		return nil, err
	}
	return &model.Venue{
		VenueName:   req.VenueName,
		Address:     req.Address,
		Description: req.Description,
		Price:       price,
		Picture:     picture,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
	}, nil
}

// AddHandler 新增場館；名稱重複時回到新增頁
// @Summary     Add venue
// @Tags        venues
// @Accept      multipart/form-data
// @Param       venueName   formData string true  "場館名稱"
// @Param       address     formData string true  "地址"
// @Param       description formData string true  "介紹"
// @Param       price       formData int    true  "每小時價格"
// @Param       open_time   formData string true  "開放時間 HH:mm"
// @Param       close_time  formData string true  "關閉時間 HH:mm"
// @Param       picture     formData file   false "圖片"
// @Success     302
// @Failure     400 {object} api.ErrorResponse
// @Router      /addVenue.do [post]
func AddHandler(db database.DB, files handler.FileSaver) echo.HandlerFunc {
	return func(c echo.Context) error {
		v, err := bindVenue(c, files)
		if err != nil {
			return api.Fail(c, err)
		}
		uploaded := v.Picture
		_, err = createVenue(c.Request().Context(), db, v)
		if err != nil {
			handler.Discard(files, uploaded)
		}
		switch {
		case errors.Is(err, service.ErrConflict):
			return handler.Redirect(c, "/venue_add")
		case err != nil:
			return api.Fail(c, err)
		}
		return handler.Redirect(c, "/venue_manage")
	}
}

// ModifyHandler 修改場館；未上傳圖片時保留原圖
// @Summary     Modify venue
// @Tags        venues
// @Accept      multipart/form-data
// @Param       venueID     formData int    true  "場館 ID"
// @Param       venueName   formData string true  "場館名稱"
// @Param       address     formData string true  "地址"
// @Param       description formData string true  "介紹"
// @Param       price       formData int    true  "每小時價格"
// @Param       open_time   formData string true  "開放時間 HH:mm"
// @Param       close_time  formData string true  "關閉時間 HH:mm"
// @Param       picture     formData file   false "圖片"
// @Success     302
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Router      /modifyVenue.do [post]
func ModifyHandler(db database.DB, files handler.FileSaver) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "venueID")
		if err != nil {
			return api.Fail(c, err)
		}
		v, err := bindVenue(c, files)
		if err != nil {
			return api.Fail(c, err)
		}
		v.VenueID = id
		uploaded := v.Picture
		if _, err := updateVenue(c.Request().Context(), db, v); err != nil {
			handler.Discard(files, uploaded)
			return api.Fail(c, err)
		}
		return handler.Redirect(c, "/venue_manage")
	}
}

// DeleteHandler 刪除場館
// @Summary     Delete venue
// @Tags        venues
// @Produce     json
// @Param       venueID formData int true "場館 ID"
// @Success     200 {boolean} boolean
// @Failure     404 {boolean} boolean
// @Router      /delVenue.do [post]
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := api.ParseID(c, "venueID")
		if err != nil {
			return api.FailBool(c, err)
		}
		if err := deleteVenue(c.Request().Context(), db, id); err != nil {
			return api.FailBool(c, err)
		}
		return c.JSON(http.StatusOK, true)
	}
}

// CheckNameHandler 名稱可用時回傳 true
// @Summary     Check venue name availability
// @Tags        venues
// @Produce     json
// @Param       venueName formData string true "場館名稱"
// @Success     200 {boolean} boolean
// @Router      /checkVenueName.do [post]
func CheckNameHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ok, err := venueNameAvailable(c.Request().Context(), db, c.FormValue("venueName"))
		if err != nil {
			return api.FailBool(c, err)
		}
		return c.JSON(http.StatusOK, ok)
	}
}
