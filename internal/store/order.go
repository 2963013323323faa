package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
)

const orderColumns = `id, user_id, venue_id, state, order_time, start_time, hours, total`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(
		&o.OrderID,
		&o.UserID,
		&o.VenueID,
		&o.State,
		&o.OrderTime,
		&o.StartTime,
		&o.Hours,
		&o.Total,
	)
}

// ListOrdersByState 依下單時間新到舊
func ListOrdersByState(ctx context.Context, db database.DB, state model.OrderState, p model.PageRequest) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE state = $1
		 ORDER BY order_time DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		state, p.Size, p.Offset(),
	)
	if err != nil {
		return nil, wrapErr("ListOrdersByState", err)
	}
	list, err := collect(rows, scanOrder)
	if err != nil {
		return nil, wrapErr("ListOrdersByState", err)
	}
	return list, nil
}

func CountOrdersByState(ctx context.Context, db database.DB, state model.OrderState) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE state = $1`, state).Scan(&n); err != nil {
		return 0, wrapErr("CountOrdersByState", err)
	}
	return n, nil
}

// ListAllOrdersByState 不分頁，供管理頁面一次列出已審核訂單
func ListAllOrdersByState(ctx context.Context, db database.DB, state model.OrderState) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE state = $1
		 ORDER BY order_time DESC, id DESC`,
		state,
	)
	if err != nil {
		return nil, wrapErr("ListAllOrdersByState", err)
	}
	list, err := collect(rows, scanOrder)
	if err != nil {
		return nil, wrapErr("ListAllOrdersByState", err)
	}
	return list, nil
}

func ListOrdersByUser(ctx context.Context, db database.DB, userID string, p model.PageRequest) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE user_id = $1
		 ORDER BY order_time DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		userID, p.Size, p.Offset(),
	)
	if err != nil {
		return nil, wrapErr("ListOrdersByUser", err)
	}
	list, err := collect(rows, scanOrder)
	if err != nil {
		return nil, wrapErr("ListOrdersByUser", err)
	}
	return list, nil
}

func CountOrdersByUser(ctx context.Context, db database.DB, userID string) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, wrapErr("CountOrdersByUser", err)
	}
	return n, nil
}

// ListVenueOrdersBetween 列出場館在 [from, to) 內開始且未被拒絕的訂單
func ListVenueOrdersBetween(ctx context.Context, db database.DB, venueID int, from, to time.Time) ([]model.Order, error) {
	rows, err := db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE venue_id = $1 AND start_time >= $2 AND start_time < $3 AND state <> $4
		 ORDER BY start_time ASC, id ASC`,
		venueID, from, to, model.OrderRejected,
	)
	if err != nil {
		return nil, wrapErr("ListVenueOrdersBetween", err)
	}
	list, err := collect(rows, scanOrder)
	if err != nil {
		return nil, wrapErr("ListVenueOrdersBetween", err)
	}
	return list, nil
}

// CountOverlappingOrders 計算與 [start, end) 重疊且未被拒絕的訂單數，excludeID 用於修改訂單時排除自己
func CountOverlappingOrders(ctx context.Context, db database.DB, venueID int, start, end time.Time, excludeID int) (int, error) {
	var n int
	err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders
		 WHERE venue_id = $1
		   AND state <> $2
		   AND id <> $3
		   AND start_time < $4
		   AND start_time + make_interval(hours => hours) > $5`,
		venueID, model.OrderRejected, excludeID, end, start,
	).Scan(&n)
	if err != nil {
		return 0, wrapErr("CountOverlappingOrders", err)
	}
	return n, nil
}

func GetOrderByID(ctx context.Context, db database.DB, id int) (*model.Order, error) {
	o := &model.Order{}
	row := db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	if err := scanOrder(row, o); err != nil {
		return nil, wrapErr("GetOrderByID", err)
	}
	return o, nil
}

func CreateOrder(ctx context.Context, db database.DB, o *model.Order) (*model.Order, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO orders (user_id, venue_id, state, order_time, start_time, hours, total)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		o.UserID,
		o.VenueID,
		o.State,
		o.OrderTime,
		o.StartTime,
		o.Hours,
		o.Total,
	)
	if err := row.Scan(&o.OrderID); err != nil {
		return nil, wrapErr("CreateOrder", err)
	}
	return o, nil
}

// UpdateOrder 修改預約內容，下單者與下單時間不變
func UpdateOrder(ctx context.Context, db database.DB, o *model.Order) error {
	tag, err := db.Exec(ctx,
		`UPDATE orders
		 SET venue_id = $1, state = $2, start_time = $3, hours = $4, total = $5
		 WHERE id = $6`,
		o.VenueID,
		o.State,
		o.StartTime,
		o.Hours,
		o.Total,
		o.OrderID,
	)
	if err != nil {
		return wrapErr("UpdateOrder", err)
	}
	return requireAffected("UpdateOrder", tag)
}

func UpdateOrderState(ctx context.Context, db database.DB, id int, state model.OrderState) error {
	tag, err := db.Exec(ctx, `UPDATE orders SET state = $1 WHERE id = $2`, state, id)
	if err != nil {
		return wrapErr("UpdateOrderState", err)
	}
	return requireAffected("UpdateOrderState", tag)
}

func DeleteOrder(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return wrapErr("DeleteOrder", err)
	}
	return requireAffected("DeleteOrder", tag)
}
