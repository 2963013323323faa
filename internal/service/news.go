package service

import (
	"context"
	"strings"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/store"
)

var (
	listNews    = store.ListNews
	countNews   = store.CountNews
	getNewsByID = store.GetNewsByID
	createNews  = store.CreateNews
	updateNews  = store.UpdateNews
	deleteNews  = store.DeleteNews
)

// ListNews 新聞分頁，依時間新到舊
func ListNews(ctx context.Context, db database.DB, p model.PageRequest) (*model.Page[model.News], error) {
	return listPage("ListNews", p,
		func() ([]model.News, error) { return listNews(ctx, db, p) },
		func() (int, error) { return countNews(ctx, db) },
	)
}

func CountNewsPages(ctx context.Context, db database.DB, size int) (int, error) {
	n, err := countNews(ctx, db)
	if err != nil {
		return 0, storeErr("CountNewsPages", err)
	}
	return model.Page[model.News]{TotalElements: n, Size: size}.TotalPages(), nil
}

func GetNews(ctx context.Context, db database.DB, id int) (*model.News, error) {
	if err := checkID("newsID", id); err != nil {
		return nil, err
	}
	n, err := getNewsByID(ctx, db, id)
	if err != nil {
		return nil, storeErr("GetNews", err)
	}
	return n, nil
}

func validNews(title, content string) (string, string, error) {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" {
		return "", "", invalid("title is required")
	}
	if content == "" {
		return "", "", invalid("content is required")
	}
	return title, content, nil
}

// CreateNews 建立時間由伺服器決定，之後不再變動
func CreateNews(ctx context.Context, db database.DB, title, content string) (*model.News, error) {
	title, content, err := validNews(title, content)
	if err != nil {
		return nil, err
	}
	n, err := createNews(ctx, db, &model.News{Title: title, Content: content, Time: timeNow()})
	if err != nil {
		return nil, storeErr("CreateNews", err)
	}
	return n, nil
}

func UpdateNews(ctx context.Context, db database.DB, id int, title, content string) (*model.News, error) {
	if err := checkID("newsID", id); err != nil {
		return nil, err
	}
	title, content, err := validNews(title, content)
	if err != nil {
		return nil, err
	}
	n, err := getNewsByID(ctx, db, id)
	if err != nil {
		return nil, storeErr("UpdateNews", err)
	}
	n.Title, n.Content = title, content
	if err := updateNews(ctx, db, n); err != nil {
		return nil, storeErr("UpdateNews", err)
	}
	return n, nil
}

func DeleteNews(ctx context.Context, db database.DB, id int) error {
	if err := checkID("newsID", id); err != nil {
		return err
	}
	if err := deleteNews(ctx, db, id); err != nil {
		return storeErr("DeleteNews", err)
	}
	return nil
}
