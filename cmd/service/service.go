// @title        Venue Booking API
// @version      1.0
// @description  場館預約與內容管理後端，頁面以伺服器端模板渲染，列表另提供 JSON 端點
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name SESSION
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/jwwang2003/SoftwareTestingDemo/docs" // 引入 swag 產出的 docs
	"github.com/jwwang2003/SoftwareTestingDemo/internal/api"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/cache"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/config"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/database"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/logger"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/middleware"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/router"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/service"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/storage"
	"github.com/jwwang2003/SoftwareTestingDemo/internal/view"
)

var (
	loadConfig      = config.Load
	newLogger       = logger.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	ensureAdmin     = service.EnsureAdmin
	newRenderer     = view.New
	uploadFs        = afero.NewOsFs
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

// errorHandler 未被 handler 處理的錯誤交給 echo 預設處理前，5xx 先寫入 log
func errorHandler(l *zap.Logger, next echo.HTTPErrorHandler) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code >= 500 {
			l.Error("unhandled error",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		next(err, c)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	l, err := newLogger(cfg.Env)
	if err != nil {
		return fmt.Errorf("建立 logger 失敗: %v", err)
	}
	defer func() { _ = l.Sync() }()
	defer logger.Install(l)()

	ctx := context.Background()
	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	if cfg.ResetDatabase {
		l.Warn("退回所有 migration 並重建資料表")
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Migration 回滾失敗: %v", err)
		}
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	if cfg.AdminUserID != "" {
		created, err := ensureAdmin(ctx, db, cfg.AdminUserID, cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("建立管理員失敗: %v", err)
		}
		if created {
			l.Info("已建立管理員帳號", zap.String("user_id", cfg.AdminUserID))
		}
	}

	renderer, err := newRenderer()
	if err != nil {
		return err
	}
	files, err := storage.NewFileStore(uploadFs(), cfg.UploadDir, cfg.UploadURL)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.IsDevelopment()
	e.Validator = api.NewValidator()
	e.Renderer = renderer
	e.HTTPErrorHandler = errorHandler(l, e.DefaultHTTPErrorHandler)
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(l))

	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    rdb,
		Sessions: service.NewSessionManager(rdb, cfg.SessionSecret, cfg.SessionTTL),
		Files:    files,
	})

	// 上傳檔案與 Swagger UI；前綴補上斜線，避免 /uploadX 也落到靜態目錄
	e.Static(strings.TrimRight(cfg.UploadURL, "/")+"/", cfg.UploadDir)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	l.Info("啟動服務", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.Env))
	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
