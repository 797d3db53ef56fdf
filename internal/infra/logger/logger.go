package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ロガー設定
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// New は設定どおりのzapロガーを作る。
func New(cfg Config) *zap.Logger {
	var encoder zapcore.Encoder

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Format == "console" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), parseLevel(cfg.Level))

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
}

// NewForEnvironment は環境名（dev/prod）から妥当なロガーを作る。
func NewForEnvironment(env string) *zap.Logger {
	if env == "prod" || env == "production" {
		return New(Config{Level: "info", Format: "json"})
	}
	return New(Config{Level: "debug", Format: "console"})
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
