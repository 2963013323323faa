package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// migrations 建立 users/news/venue/message/orders 等資料表
//
//go:embed migrations/*.sql
var migrations embed.FS

type migrator interface {
	Up() error
	Down() error
}

var (
	pgxpoolNew      = pgxpool.New
	sqlOpen         = sql.Open
	postgresDriver  = postgres.WithInstance
	migrationSource = iofs.New
	newMigrate      = func(source src.Driver, driver dbdriver.Driver) (migrator, error) {
		return migrate.NewWithInstance("iofs", source, "postgres", driver)
	}
)

// NewPgxPool 建立 pgx 連線池
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	pool, err := pgxpoolNew(ctx, url)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// withMigrator 以 pgx stdlib driver 開啟一條獨立連線執行 fn，結束後關閉
func withMigrator(dbURL string, fn func(migrator) error) error {
	sqlDB, err := sqlOpen("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer sqlDB.Close()

	driver, err := postgresDriver(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("postgres driver: %w", err)
	}
	source, err := migrationSource(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}
	m, err := newMigrate(source, driver)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := fn(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// RunMigrations 升級到最新版本，已是最新不視為錯誤
func RunMigrations(dbURL string) error {
	return withMigrator(dbURL, migrator.Up)
}

// RollbackAll 退回所有 migration，僅供開發環境重建資料表
func RollbackAll(dbURL string) error {
	return withMigrator(dbURL, migrator.Down)
}
