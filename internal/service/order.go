package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/store"
)

var (
	listOrdersByState      = store.ListOrdersByState
	countOrdersByState     = store.CountOrdersByState
	listAllOrdersByState   = store.ListAllOrdersByState
	listOrdersByUser       = store.ListOrdersByUser
	countOrdersByUser      = store.CountOrdersByUser
	listVenueOrdersBetween = store.ListVenueOrdersBetween
	countOverlappingOrders = store.CountOverlappingOrders
	getOrderByID           = store.GetOrderByID
	createOrder            = store.CreateOrder
	updateOrder            = store.UpdateOrder
	updateOrderState       = store.UpdateOrderState
	deleteOrder            = store.DeleteOrder

	// Location 預約日期與時段所屬時區
	Location = time.Local
)

const (
	DateLayout = "2006-01-02"
	maxHours   = 24
)

// OrderInput 下單與修改訂單的欄位，Date 為 2006-01-02，StartTime 為 HH:mm
type OrderInput struct {
	VenueName string
	Date      string
	StartTime string
	Hours     int
}

// ListOrdersByState 依狀態分頁，依下單時間新到舊
func ListOrdersByState(ctx context.Context, db database.DB, state model.OrderState, p model.PageRequest) (*model.Page[model.OrderVo], error) {
	page, err := listPage("ListOrdersByState", p,
		func() ([]model.Order, error) { return listOrdersByState(ctx, db, state, p) },
		func() (int, error) { return countOrdersByState(ctx, db, state) },
	)
	if err != nil {
		return nil, err
	}
	vos, err := BuildOrderVos(ctx, db, page.Content)
	if err != nil {
		return nil, err
	}
	return model.NewPage(vos, page.TotalElements, p), nil
}

func CountOrderPages(ctx context.Context, db database.DB, state model.OrderState, size int) (int, error) {
	n, err := countOrdersByState(ctx, db, state)
	if err != nil {
		return 0, storeErr("CountOrderPages", err)
	}
	return model.Page[model.Order]{TotalElements: n, Size: size}.TotalPages(), nil
}

// ListAuditedOrders 不分頁列出已審核訂單
func ListAuditedOrders(ctx context.Context, db database.DB) ([]model.OrderVo, error) {
	orders, err := listAllOrdersByState(ctx, db, model.OrderAudited)
	if err != nil {
		return nil, storeErr("ListAuditedOrders", err)
	}
	return BuildOrderVos(ctx, db, orders)
}

// ListUserOrders 登入者自己的訂單
func ListUserOrders(ctx context.Context, db database.DB, sess *model.Session, p model.PageRequest) (*model.Page[model.OrderVo], error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}
	page, err := listPage("ListUserOrders", p,
		func() ([]model.Order, error) { return listOrdersByUser(ctx, db, sess.LoginID, p) },
		func() (int, error) { return countOrdersByUser(ctx, db, sess.LoginID) },
	)
	if err != nil {
		return nil, err
	}
	vos, err := BuildOrderVos(ctx, db, page.Content)
	if err != nil {
		return nil, err
	}
	return model.NewPage(vos, page.TotalElements, p), nil
}

func CountUserOrderPages(ctx context.Context, db database.DB, sess *model.Session, size int) (int, error) {
	if sess == nil {
		return 0, ErrUnauthenticated
	}
	n, err := countOrdersByUser(ctx, db, sess.LoginID)
	if err != nil {
		return 0, storeErr("CountUserOrderPages", err)
	}
	return model.Page[model.Order]{TotalElements: n, Size: size}.TotalPages(), nil
}

// BuildOrderVos 補上場館名稱，場館已刪除時名稱留空
func BuildOrderVos(ctx context.Context, db database.DB, orders []model.Order) ([]model.OrderVo, error) {
	names := map[int]string{}
	vos := make([]model.OrderVo, 0, len(orders))
	for _, o := range orders {
		name, ok := names[o.VenueID]
		if !ok {
			v, err := getVenueByID(ctx, db, o.VenueID)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return nil, storeErr("BuildOrderVos", err)
			}
			if v != nil {
				name = v.VenueName
			}
			names[o.VenueID] = name
		}
		vos = append(vos, model.OrderVo{
			OrderID:   o.OrderID,
			UserID:    o.UserID,
			VenueID:   o.VenueID,
			VenueName: name,
			State:     o.State,
			OrderTime: o.OrderTime,
			StartTime: o.StartTime,
			Hours:     o.Hours,
			Total:     o.Total,
		})
	}
	return vos, nil
}

func GetOrder(ctx context.Context, db database.DB, id int) (*model.Order, error) {
	if err := checkID("orderID", id); err != nil {
		return nil, err
	}
	o, err := getOrderByID(ctx, db, id)
	if err != nil {
		return nil, storeErr("GetOrder", err)
	}
	return o, nil
}

func parseDate(date string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), Location)
	if err != nil {
		return time.Time{}, invalid("date must be YYYY-MM-DD")
	}
	return d, nil
}

// VenueOrders 某場館某一天未被駁回的預約，用於計算可預約時段
func VenueOrders(ctx context.Context, db database.DB, venueName, date string) (*model.VenueOrder, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	v, err := GetVenueByName(ctx, db, venueName)
	if err != nil {
		return nil, err
	}
	orders, err := listVenueOrdersBetween(ctx, db, v.VenueID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, storeErr("VenueOrders", err)
	}
	return &model.VenueOrder{Venue: *v, Orders: orders}, nil
}

// planOrder 檢查場館、時段與重疊，回傳填好場館、時間與金額的訂單
func planOrder(ctx context.Context, db database.DB, in OrderInput, excludeID int) (*model.Order, error) {
	if in.Hours < 1 || in.Hours > maxHours {
		return nil, invalid("hours must be between 1 and %d", maxHours)
	}
	day, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	startMin, err := model.ParseClock(strings.TrimSpace(in.StartTime))
	if err != nil {
		return nil, invalid("startTime must be HH:mm")
	}
	v, err := GetVenueByName(ctx, db, in.VenueName)
	if err != nil {
		return nil, err
	}
	open, err := model.ParseClock(v.OpenTime)
	if err != nil {
		return nil, storeErr("planOrder", err)
	}
	closing, err := model.ParseClock(v.CloseTime)
	if err != nil {
		return nil, storeErr("planOrder", err)
	}
	endMin := startMin + in.Hours*60
	if startMin < open || endMin > closing {
		return nil, invalid("booking must be within %s-%s", v.OpenTime, v.CloseTime)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), startMin/60, startMin%60, 0, 0, Location)
	end := start.Add(time.Duration(in.Hours) * time.Hour)
	n, err := countOverlappingOrders(ctx, db, v.VenueID, start, end, excludeID)
	if err != nil {
		return nil, storeErr("planOrder", err)
	}
	if n > 0 {
		return nil, conflict("venue %q is already booked in this period", v.VenueName)
	}
	return &model.Order{
		VenueID:   v.VenueID,
		StartTime: start,
		Hours:     in.Hours,
		Total:     in.Hours * v.Price,
	}, nil
}

// SubmitOrder 以場館名稱下單，金額為時數乘以當下單價
func SubmitOrder(ctx context.Context, db database.DB, sess *model.Session, in OrderInput) (*model.Order, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}
	o, err := planOrder(ctx, db, in, 0)
	if err != nil {
		return nil, err
	}
	o.UserID = sess.LoginID
	o.State = model.OrderSubmitted
	o.OrderTime = timeNow()
	created, err := createOrder(ctx, db, o)
	if err != nil {
		return nil, storeErr("SubmitOrder", err)
	}
	return created, nil
}

// ModifyOrder 只有下單者可修改，修改後重新等待審核
func ModifyOrder(ctx context.Context, db database.DB, sess *model.Session, id int, in OrderInput) (*model.Order, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}
	old, err := GetOrder(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if old.UserID != sess.LoginID {
		return nil, ErrForbidden
	}
	if old.State == model.OrderFinished {
		return nil, conflict("order %d is already finished", id)
	}
	o, err := planOrder(ctx, db, in, id)
	if err != nil {
		return nil, err
	}
	o.OrderID = old.OrderID
	o.UserID = old.UserID
	o.OrderTime = old.OrderTime
	o.State = model.OrderSubmitted
	if err := updateOrder(ctx, db, o); err != nil {
		return nil, storeErr("ModifyOrder", err)
	}
	return o, nil
}

// transition 只允許 from 狀態的訂單轉為 to
func transition(ctx context.Context, db database.DB, op string, o *model.Order, from, to model.OrderState) error {
	if o.State != from {
		return conflict("order %d cannot move from state %d to %d", o.OrderID, o.State, to)
	}
	if err := updateOrderState(ctx, db, o.OrderID, to); err != nil {
		return storeErr(op, err)
	}
	o.State = to
	return nil
}

// ConfirmOrder 管理員審核通過
func ConfirmOrder(ctx context.Context, db database.DB, id int) error {
	o, err := GetOrder(ctx, db, id)
	if err != nil {
		return err
	}
	return transition(ctx, db, "ConfirmOrder", o, model.OrderSubmitted, model.OrderAudited)
}

// RejectOrder 管理員駁回
func RejectOrder(ctx context.Context, db database.DB, id int) error {
	o, err := GetOrder(ctx, db, id)
	if err != nil {
		return err
	}
	return transition(ctx, db, "RejectOrder", o, model.OrderSubmitted, model.OrderRejected)
}

// FinishOrder 下單者或管理員將已審核訂單結案
func FinishOrder(ctx context.Context, db database.DB, sess *model.Session, id int) error {
	if sess == nil {
		return ErrUnauthenticated
	}
	o, err := GetOrder(ctx, db, id)
	if err != nil {
		return err
	}
	if !sess.IsAdmin() && o.UserID != sess.LoginID {
		return ErrForbidden
	}
	return transition(ctx, db, "FinishOrder", o, model.OrderAudited, model.OrderFinished)
}

// DeleteOrder 下單者或管理員可刪除
func DeleteOrder(ctx context.Context, db database.DB, sess *model.Session, id int) error {
	if sess == nil {
		return ErrUnauthenticated
	}
	o, err := GetOrder(ctx, db, id)
	if err != nil {
		return err
	}
	if !sess.IsAdmin() && o.UserID != sess.LoginID {
		return ErrForbidden
	}
	if err := deleteOrder(ctx, db, id); err != nil {
		return storeErr("DeleteOrder", err)
	}
	return nil
}
