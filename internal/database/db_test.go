package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDB(t *testing.T) {
	db := &FakeDB{}
	require.Panics(t, func() { db.Exec(context.Background(), "", nil) })
	require.Panics(t, func() { db.Query(context.Background(), "") })
	require.Panics(t, func() { db.QueryRow(context.Background(), "") })
	require.Panics(t, func() { db.Ping(context.Background()) })
	db.Close()

	execCalled := false
	queryCalled := false
	rowCalled := false
	pingCalled := false
	closeCalled := false

	db.ExecFn = func(ctx context.Context, s string, args ...any) (pgconn.CommandTag, error) {
		execCalled = true
		return pgconn.CommandTag{}, errors.New("e")
	}
	db.QueryFn = func(ctx context.Context, s string, args ...any) (pgx.Rows, error) {
		queryCalled = true
		return &FakeRows{}, nil
	}
	db.QueryRowFn = func(ctx context.Context, s string, args ...any) pgx.Row {
		rowCalled = true
		return &FakeRow{}
	}
	db.PingFn = func(ctx context.Context) error { pingCalled = true; return nil }
	db.CloseFn = func() { closeCalled = true }

	_, err := db.Exec(context.Background(), "sql")
	require.Error(t, err)
	_, err = db.Query(context.Background(), "sql")
	require.NoError(t, err)
	_ = db.QueryRow(context.Background(), "sql")
	require.NoError(t, db.Ping(context.Background()))
	db.Close()
	require.True(t, execCalled)
	require.True(t, queryCalled)
	require.True(t, rowCalled)
	require.True(t, pingCalled)
	require.True(t, closeCalled)
}

type state int

func TestFakeRowScan(t *testing.T) {
	now := time.Now()
	row := &FakeRow{Values: []any{7, "alice", now, 2, nil}}
	var (
		id   int
		name string
		ts   time.Time
		st   state
		opt  string
	)
	require.NoError(t, row.Scan(&id, &name, &ts, &st, &opt))
	require.Equal(t, 7, id)
	require.Equal(t, "alice", name)
	require.Equal(t, now, ts)
	require.Equal(t, state(2), st)
	require.Equal(t, "", opt)

	require.Error(t, row.Scan(&id))
	require.Error(t, (&FakeRow{Values: []any{1}}).Scan(id))
	require.Error(t, (&FakeRow{Values: []any{1}}).Scan(&name))
	require.ErrorIs(t, (&FakeRow{Err: pgx.ErrNoRows}).Scan(&id), pgx.ErrNoRows)
}

func TestFakeRows(t *testing.T) {
	rows := &FakeRows{Data: [][]any{{1, "a"}, {2, "b"}}}
	var got []string
	for rows.Next() {
		var (
			id int
			s  string
		)
		require.NoError(t, rows.Scan(&id, &s))
		got = append(got, s)
		vals, err := rows.Values()
		require.NoError(t, err)
		require.Len(t, vals, 2)
	}
	require.NoError(t, rows.Err())
	require.Equal(t, []string{"a", "b"}, got)
	require.True(t, rows.Closed())
	require.Nil(t, rows.Conn())
	require.Nil(t, rows.RawValues())
	require.Nil(t, rows.FieldDescriptions())

	rows = &FakeRows{Data: [][]any{{1}}, ScanErr: errors.New("scan")}
	require.True(t, rows.Next())
	var id int
	require.Error(t, rows.Scan(&id))
	rows.Close()
	require.False(t, rows.Next())
}
