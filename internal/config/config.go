// Package config 從環境變數讀取設定，存在 .env 時先載入
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	HTTPAddr      string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionSecret string
	SessionTTL    time.Duration
	UploadDir     string
	UploadURL     string
	AdminUserID   string
	AdminPassword string
	// ResetDatabase 啟動時先退回所有 migration 再重建，只允許在 development
	ResetDatabase bool
}

func (c Config) IsDevelopment() bool { return c.Env == "development" }

var loadDotenv = godotenv.Load

// Load 讀取設定；.env 不存在不視為錯誤
func Load(files ...string) (Config, error) {
	if err := loadDotenv(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("載入 .env 失敗: %w", err)
	}

	var cfg Config
	var err error
	if cfg.DatabaseURL, err = must("DATABASE_URL"); err != nil {
		return Config{}, err
	}
	if cfg.RedisAddr, err = must("REDIS_ADDR"); err != nil {
		return Config{}, err
	}
	if cfg.SessionSecret, err = must("SESSION_SECRET"); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = intOr("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = durationOr("SESSION_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.Env = envOr("APP_ENV", "production")
	cfg.HTTPAddr = envOr("HTTP_ADDR", ":8080")
	cfg.UploadDir = envOr("UPLOAD_DIR", "static/upload")
	cfg.UploadURL = envOr("UPLOAD_URL_PREFIX", "/upload")
	cfg.AdminUserID = os.Getenv("ADMIN_USER_ID")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	if (cfg.AdminUserID == "") != (cfg.AdminPassword == "") {
		return Config{}, fmt.Errorf("ADMIN_USER_ID 與 ADMIN_PASSWORD 必須同時設定")
	}
	if cfg.ResetDatabase, err = boolOr("RESET_DATABASE", false); err != nil {
		return Config{}, err
	}
	if cfg.ResetDatabase && !cfg.IsDevelopment() {
		return Config{}, fmt.Errorf("RESET_DATABASE 只能在 development 使用")
	}
	return cfg, nil
}

func must(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("環境變數 %s 未設定", key)
	}
	return v, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func intOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("無效的 %s: %q", key, v)
	}
	return n, nil
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("無效的 %s: %q", key, v)
	}
	return d, nil
}

func boolOr(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("無效的 %s: %q", key, v)
	}
	return b, nil
}
