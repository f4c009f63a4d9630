// Package logging 基于 zap 的日志：标准输出的应用日志 + 按数据源分文件的审计日志。
// 审计日志记录上游原始响应全文，供合规追溯与排障。
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var appLogger *zap.Logger

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}
}

// Init 初始化应用日志（标准输出）
func Init(level string) error {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.AddSync(os.Stdout),
		lvl,
	)
	appLogger = zap.New(core)
	return nil
}

// L 获取应用 logger
func L() *zap.Logger {
	if appLogger == nil {
		appLogger, _ = zap.NewProduction()
	}
	return appLogger
}

// NewAuditLogger 创建审计 logger，追加写入 {dir}/{name}.log
func NewAuditLogger(dir, name string) (*zap.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, name+".log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.AddSync(f),
		zapcore.InfoLevel,
	)
	return zap.New(core).Named(name), nil
}
