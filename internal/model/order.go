package model

import "time"

// OrderState 預約訂單狀態
type OrderState int

const (
	OrderSubmitted OrderState = 1
	OrderAudited   OrderState = 2
	OrderFinished  OrderState = 3
	OrderRejected  OrderState = 4
)

type Order struct {
	OrderID   int        `db:"id" json:"orderID"`
	UserID    string     `db:"user_id" json:"userID"`
	VenueID   int        `db:"venue_id" json:"venueID"`
	State     OrderState `db:"state" json:"state"`
	OrderTime time.Time  `db:"order_time" json:"orderTime"`
	StartTime time.Time  `db:"start_time" json:"startTime"`
	Hours     int        `db:"hours" json:"hours"`
	Total     int        `db:"total" json:"total"`
}

// EndTime 預約結束時間
func (o Order) EndTime() time.Time {
	return o.StartTime.Add(time.Duration(o.Hours) * time.Hour)
}

// OrderVo 訂單加上場館名稱
type OrderVo struct {
	OrderID   int        `json:"orderID"`
	UserID    string     `json:"userID"`
	VenueID   int        `json:"venueID"`
	VenueName string     `json:"venueName"`
	State     OrderState `json:"state"`
	OrderTime time.Time  `json:"orderTime"`
	StartTime time.Time  `json:"startTime"`
	Hours     int        `json:"hours"`
	Total     int        `json:"total"`
}

// VenueOrder 某場館某一天的所有預約，用來計算可預約時段
type VenueOrder struct {
	Venue  Venue   `json:"venue"`
	Orders []Order `json:"orders"`
}
