package config

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel overrides LogConfig.Level when set.
const EnvLogLevel = "ZMQ_LOG_LEVEL"

// NewLogger builds a zap logger for cfg.  A level of "off" yields a no-op
// logger.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	lvl, on, ok := parseLevel(os.Getenv(EnvLogLevel))
	if !ok {
		if lvl, on, ok = parseLevel(cfg.Level); !ok {
			lvl, on = zapcore.InfoLevel, true
		}
	}
	if !on {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func parseLevel(raw string) (lvl zapcore.Level, on bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zapcore.InfoLevel, true, false
	case "trace", "debug":
		return zapcore.DebugLevel, true, true
	case "info":
		return zapcore.InfoLevel, true, true
	case "warn", "warning":
		return zapcore.WarnLevel, true, true
	case "error":
		return zapcore.ErrorLevel, true, true
	case "disabled", "off", "none":
		return zapcore.InfoLevel, false, true
	}
	return zapcore.InfoLevel, true, false
}
