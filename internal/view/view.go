// Package view 以 html/template 渲染內嵌的頁面模板
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// 頁面名稱
const (
	Index       = "index"
	News        = "news"
	NewsList    = "news_list"
	Venue       = "venue"
	VenueList   = "venue_list"
	MessageList = "message_list"
	Login       = "login"
	Signup      = "signup"
	UserInfo    = "user_info"
	OrderManage = "order_manage"
	OrderPlace  = "order_place"
	OrderEdit   = "order_edit"

	AdminIndex        = "admin/admin_index"
	NewsManage        = "admin/news_manage"
	NewsAdd           = "admin/news_add"
	NewsEdit          = "admin/news_edit"
	VenueManage       = "admin/venue_manage"
	VenueAdd          = "admin/venue_add"
	VenueEdit         = "admin/venue_edit"
	MessageManage     = "admin/message_manage"
	UserManage        = "admin/user_manage"
	UserAdd           = "admin/user_add"
	UserEdit          = "admin/user_edit"
	ReservationManage = "admin/reservation_manage"
)

// Names 所有頁面，供測試確認模板齊全
var Names = []string{
	Index, News, NewsList, Venue, VenueList, MessageList, Login, Signup,
	UserInfo, OrderManage, OrderPlace, OrderEdit,
	AdminIndex, NewsManage, NewsAdd, NewsEdit, VenueManage, VenueAdd, VenueEdit,
	MessageManage, UserManage, UserAdd, UserEdit, ReservationManage,
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
	"messageState": func(s model.MessageState) string {
		switch s {
		case model.MessageWaiting:
			return "waiting"
		case model.MessagePassed:
			return "passed"
		case model.MessageRejected:
			return "rejected"
		}
		return fmt.Sprint(int(s))
	},
	"orderState": func(s model.OrderState) string {
		switch s {
		case model.OrderSubmitted:
			return "submitted"
		case model.OrderAudited:
			return "audited"
		case model.OrderFinished:
			return "finished"
		case model.OrderRejected:
			return "rejected"
		}
		return fmt.Sprint(int(s))
	},
}

// Renderer 實作 echo.Renderer
type Renderer struct {
	templates *template.Template
}

func New() (*Renderer, error) {
	t, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	if r.templates.Lookup(name) == nil {
		return fmt.Errorf("view %q not found", name)
	}
	return r.templates.ExecuteTemplate(w, name, data)
}
