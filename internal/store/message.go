package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
)

const messageColumns = `id, user_id, content, created_at, state`

func scanMessage(row pgx.Row, m *model.Message) error {
	return row.Scan(&m.MessageID, &m.UserID, &m.Content, &m.Time, &m.State)
}

// ListMessagesByState 依建立時間新到舊
func ListMessagesByState(ctx context.Context, db database.DB, state model.MessageState, p model.PageRequest) ([]model.Message, error) {
	rows, err := db.Query(ctx,
		`SELECT `+messageColumns+` FROM messages
		 WHERE state = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		state, p.Size, p.Offset(),
	)
	if err != nil {
		return nil, wrapErr("ListMessagesByState", err)
	}
	list, err := collect(rows, scanMessage)
	if err != nil {
		return nil, wrapErr("ListMessagesByState", err)
	}
	return list, nil
}

func CountMessagesByState(ctx context.Context, db database.DB, state model.MessageState) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM messages WHERE state = $1`, state).Scan(&n); err != nil {
		return 0, wrapErr("CountMessagesByState", err)
	}
	return n, nil
}

// ListMessagesByUser 不分狀態列出某使用者的留言
func ListMessagesByUser(ctx context.Context, db database.DB, userID string, p model.PageRequest) ([]model.Message, error) {
	rows, err := db.Query(ctx,
		`SELECT `+messageColumns+` FROM messages
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		userID, p.Size, p.Offset(),
	)
	if err != nil {
		return nil, wrapErr("ListMessagesByUser", err)
	}
	list, err := collect(rows, scanMessage)
	if err != nil {
		return nil, wrapErr("ListMessagesByUser", err)
	}
	return list, nil
}

func CountMessagesByUser(ctx context.Context, db database.DB, userID string) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM messages WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, wrapErr("CountMessagesByUser", err)
	}
	return n, nil
}

func GetMessageByID(ctx context.Context, db database.DB, id int) (*model.Message, error) {
	m := &model.Message{}
	row := db.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id)
	if err := scanMessage(row, m); err != nil {
		return nil, wrapErr("GetMessageByID", err)
	}
	return m, nil
}

func CreateMessage(ctx context.Context, db database.DB, m *model.Message) (*model.Message, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO messages (user_id, content, created_at, state)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		m.UserID,
		m.Content,
		m.Time,
		m.State,
	)
	if err := row.Scan(&m.MessageID); err != nil {
		return nil, wrapErr("CreateMessage", err)
	}
	return m, nil
}

// UpdateMessage 更新內容與狀態，作者與時間不變
func UpdateMessage(ctx context.Context, db database.DB, m *model.Message) error {
	tag, err := db.Exec(ctx,
		`UPDATE messages SET content = $1, state = $2 WHERE id = $3`,
		m.Content,
		m.State,
		m.MessageID,
	)
	if err != nil {
		return wrapErr("UpdateMessage", err)
	}
	return requireAffected("UpdateMessage", tag)
}

func UpdateMessageState(ctx context.Context, db database.DB, id int, state model.MessageState) error {
	tag, err := db.Exec(ctx, `UPDATE messages SET state = $1 WHERE id = $2`, state, id)
	if err != nil {
		return wrapErr("UpdateMessageState", err)
	}
	return requireAffected("UpdateMessageState", tag)
}

func DeleteMessage(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return wrapErr("DeleteMessage", err)
	}
	return requireAffected("DeleteMessage", tag)
}
