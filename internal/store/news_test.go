package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/model"
)

func TestListNews(t *testing.T) {
	now := time.Now()
	var gotSQL string
	var gotArgs []any
	db := &database.FakeDB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			gotSQL, gotArgs = sql, args
			return &database.FakeRows{Data: [][]any{
				{2, "t2", "c2", now},
				{1, "t1", "c1", now.Add(-time.Hour)},
			}}, nil
		},
	}

	list, err := ListNews(context.Background(), db, model.PageRequest{Page: 1, Size: 5})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "t2", list[0].Title)
	require.Contains(t, gotSQL, "ORDER BY created_at DESC")
	require.Equal(t, []any{5, 5}, gotArgs)
}

func TestListNewsQueryError(t *testing.T) {
	db := &database.FakeDB{
		QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			return nil, errBoom
		},
	}
	_, err := ListNews(context.Background(), db, model.PageRequest{Size: 5})
	require.ErrorIs(t, err, errBoom)
}

func TestCountNews(t *testing.T) {
	n, err := CountNews(context.Background(), rowDB([]any{12}, nil))
	require.NoError(t, err)
	require.Equal(t, 12, n)

	_, err = CountNews(context.Background(), rowDB(nil, errBoom))
	require.ErrorIs(t, err, errBoom)
}

func TestGetNewsByID(t *testing.T) {
	now := time.Now()
	n, err := GetNewsByID(context.Background(), rowDB([]any{3, "title", "content", now}, nil), 3)
	require.NoError(t, err)
	require.Equal(t, &model.News{NewsID: 3, Title: "title", Content: "content", Time: now}, n)

	_, err = GetNewsByID(context.Background(), rowDB(nil, pgx.ErrNoRows), 3)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateNews(t *testing.T) {
	now := time.Now()
	var gotArgs []any
	db := &database.FakeDB{
		QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			gotArgs = args
			require.True(t, strings.HasPrefix(strings.TrimSpace(sql), "INSERT INTO news"))
			return &database.FakeRow{Values: []any{9, now}}
		},
	}
	n, err := CreateNews(context.Background(), db, &model.News{Title: "a", Content: "b", Time: now})
	require.NoError(t, err)
	require.Equal(t, 9, n.NewsID)
	require.Equal(t, []any{"a", "b", now}, gotArgs)
}

func TestUpdateNews(t *testing.T) {
	var args []any
	err := UpdateNews(context.Background(), execDB("UPDATE 1", nil, &args), &model.News{NewsID: 4, Title: "x", Content: "y"})
	require.NoError(t, err)
	require.Equal(t, []any{"x", "y", 4}, args)

	err = UpdateNews(context.Background(), execDB("UPDATE 0", nil, nil), &model.News{NewsID: 4})
	require.ErrorIs(t, err, ErrNotFound)

	err = UpdateNews(context.Background(), execDB("", errBoom, nil), &model.News{NewsID: 4})
	require.ErrorIs(t, err, errBoom)
}

func TestDeleteNews(t *testing.T) {
	require.NoError(t, DeleteNews(context.Background(), execDB("DELETE 1", nil, nil), 1))
	require.ErrorIs(t, DeleteNews(context.Background(), execDB("DELETE 0", nil, nil), 1), ErrNotFound)
}
