// Package logger 建立全域 zap logger
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	newDevelopment = zap.NewDevelopmentConfig
	newProduction  = zap.NewProductionConfig
)

// New development 輸出易讀格式，其餘環境輸出 JSON
func New(env string) (*zap.Logger, error) {
	cfg := newProduction()
	if env == "development" {
		cfg = newDevelopment()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// Install 替換 zap 全域 logger，回傳的函式還原先前設定
func Install(l *zap.Logger) func() {
	return zap.ReplaceGlobals(l)
}
