package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
)

const newsColumns = `id, title, content, created_at`

func scanNews(row pgx.Row, n *model.News) error {
	return row.Scan(&n.NewsID, &n.Title, &n.Content, &n.Time)
}

// ListNews 依建立時間新到舊
func ListNews(ctx context.Context, db database.DB, p model.PageRequest) ([]model.News, error) {
	rows, err := db.Query(ctx,
		`SELECT `+newsColumns+` FROM news
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		p.Size, p.Offset(),
	)
	if err != nil {
		return nil, wrapErr("ListNews", err)
	}
	list, err := collect(rows, scanNews)
	if err != nil {
		return nil, wrapErr("ListNews", err)
	}
	return list, nil
}

func CountNews(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM news`).Scan(&n); err != nil {
		return 0, wrapErr("CountNews", err)
	}
	return n, nil
}

func GetNewsByID(ctx context.Context, db database.DB, id int) (*model.News, error) {
	n := &model.News{}
	row := db.QueryRow(ctx, `SELECT `+newsColumns+` FROM news WHERE id = $1`, id)
	if err := scanNews(row, n); err != nil {
		return nil, wrapErr("GetNewsByID", err)
	}
	return n, nil
}

func CreateNews(ctx context.Context, db database.DB, n *model.News) (*model.News, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO news (title, content, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		n.Title,
		n.Content,
		n.Time,
	)
	if err := row.Scan(&n.NewsID, &n.Time); err != nil {
		return nil, wrapErr("CreateNews", err)
	}
	return n, nil
}

// UpdateNews 只更新標題與內容，建立時間不可變
func UpdateNews(ctx context.Context, db database.DB, n *model.News) error {
	tag, err := db.Exec(ctx,
		`UPDATE news SET title = $1, content = $2 WHERE id = $3`,
		n.Title,
		n.Content,
		n.NewsID,
	)
	if err != nil {
		return wrapErr("UpdateNews", err)
	}
	return requireAffected("UpdateNews", tag)
}

func DeleteNews(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return wrapErr("DeleteNews", err)
	}
	return requireAffected("DeleteNews", tag)
}
