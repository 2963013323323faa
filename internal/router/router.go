package router

import (
	"github.com/labstack/echo/v4"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/cache"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/handler"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/handler/home"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/handler/messages"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/handler/news"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/handler/orders"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/handler/users"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/handler/venues"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/middleware"
)

// Sessions 會話的解析與建立、銷毀
type Sessions interface {
	middleware.SessionResolver
	users.SessionStore
}

// Deps 路由需要的外部依賴
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Sessions Sessions
	Files    handler.FileSaver
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	db := d.DB
	login := middleware.RequireLogin
	admin := middleware.RequireAdmin

	e.Use(middleware.LoadSession(d.Sessions))

	// 健康檢查
	e.GET("/ping", handler.PingHandler(db, d.Cache))

	// 首頁
	e.GET("/", home.IndexHandler(db))
	e.GET("/index", home.IndexHandler(db))
	e.GET("/admin_index", home.AdminIndexHandler(), admin)

	// 新聞
	e.GET("/news", news.DetailHandler(db))
	e.GET("/news_list", news.ListPageHandler(db))
	e.GET("/news/getNewsList", news.ListHandler(db))
	e.GET("/news_manage", news.ManagePageHandler(db), admin)
	e.GET("/news_add", news.AddPageHandler(), admin)
	e.GET("/news_edit", news.EditPageHandler(db), admin)
	e.GET("/newsList.do", news.AdminListHandler(db), admin)
	e.POST("/addNews.do", news.AddHandler(db), admin)
	e.POST("/modifyNews.do", news.ModifyHandler(db), admin)
	e.POST("/delNews.do", news.DeleteHandler(db), admin)

	// 場館
	e.GET("/venue", venues.DetailHandler(db))
	e.GET("/venue_list", venues.ListPageHandler(db))
	e.GET("/venuelist/getVenueList", venues.ListHandler(db))
	e.GET("/venue_manage", venues.ManagePageHandler(db), admin)
	e.GET("/venue_add", venues.AddPageHandler(), admin)
	e.GET("/venue_edit", venues.EditPageHandler(db), admin)
	e.GET("/venueList.do", venues.AdminListHandler(db), admin)
	e.POST("/addVenue.do", venues.AddHandler(db, d.Files), admin)
	e.POST("/modifyVenue.do", venues.ModifyHandler(db, d.Files), admin)
	e.POST("/delVenue.do", venues.DeleteHandler(db), admin)
	e.POST("/checkVenueName.do", venues.CheckNameHandler(db), admin)

	// 留言
	e.GET("/message/getMessageList", messages.ListHandler(db))
	e.GET("/message_list", messages.ListPageHandler(db), login)
	e.GET("/message/findUserList", messages.UserListHandler(db), login)
	e.POST("/sendMessage.do", messages.SendHandler(db), login)
	e.POST("/modifyMessage.do", messages.ModifyHandler(db), login)
	e.POST("/delMessage.do", messages.DeleteHandler(db), login)
	e.GET("/message_manage", messages.ManagePageHandler(db), admin)
	e.GET("/messageList.do", messages.AdminListHandler(db), admin)
	e.POST("/passMessage.do", messages.PassHandler(db), admin)
	e.POST("/rejectMessage.do", messages.RejectHandler(db), admin)

	// 使用者
	e.GET("/login", users.LoginPageHandler())
	e.GET("/signup", users.SignupPageHandler())
	e.POST("/loginCheck.do", users.LoginHandler(db, d.Sessions))
	e.GET("/logout.do", users.LogoutHandler(d.Sessions))
	e.GET("/quit.do", users.LogoutHandler(d.Sessions))
	e.POST("/register.do", users.RegisterHandler(db))
	e.POST("/checkUserID.do", users.CheckUserIDHandler(db))
	e.GET("/user_info", users.InfoPageHandler(db), login)
	e.POST("/updateUser.do", users.UpdateProfileHandler(db, d.Sessions, d.Files), login)
	e.GET("/checkPassword.do", users.CheckPasswordHandler(db), login)
	e.GET("/user_manage", users.ManagePageHandler(db), admin)
	e.GET("/user_add", users.AddPageHandler(), admin)
	e.GET("/user_edit", users.EditPageHandler(db), admin)
	e.GET("/userList.do", users.ListHandler(db), admin)
	e.POST("/addUser.do", users.AddHandler(db), admin)
	e.POST("/modifyUser.do", users.ModifyHandler(db, d.Sessions), admin)
	e.POST("/delUser.do", users.DeleteHandler(db, d.Sessions), admin)

	// 訂單
	e.GET("/order/getOrderList", orders.VenueOrdersHandler(db))
	e.GET("/order_manage", orders.ManagePageHandler(db), login)
	e.GET("/getOrderList.do", orders.UserListHandler(db), login)
	e.GET("/order_place.do", orders.PlacePageHandler(db), login)
	e.GET("/modifyOrder.do", orders.EditPageHandler(db), login)
	e.POST("/addOrder.do", orders.AddHandler(db), login)
	e.POST("/modifyOrder", orders.ModifyHandler(db), login)
	e.POST("/finishOrder.do", orders.FinishHandler(db), login)
	e.POST("/delOrder.do", orders.DeleteHandler(db), login)
	e.GET("/reservation_manage", orders.ReservationPageHandler(db), admin)
	e.GET("/admin/getOrderList.do", orders.PendingListHandler(db), admin)
	e.POST("/passOrder.do", orders.PassHandler(db), admin)
	e.POST("/rejectOrder.do", orders.RejectHandler(db), admin)
}
