package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. Packages use it directly
// (logger.Log.Info("item_created", zap.String("id", id))).
var Log *zap.Logger

// Init configures the global logger. Level and format come from config but
// can be overridden with BACKBONE_LOG_LEVEL / BACKBONE_LOG_FORMAT, which is
// handy in tests and containers.
func Init(level, format string) error {
	if v := os.Getenv("BACKBONE_LOG_LEVEL"); v != "" {
		level = v
	}
	if v := os.Getenv("BACKBONE_LOG_FORMAT"); v != "" {
		format = v
	}

	var lvl zapcore.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn", "warning":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if strings.ToLower(strings.TrimSpace(format)) != "json" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes buffered log entries. Safe to call on shutdown paths even if
// Init was never run.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

func init() {
	// keep call sites safe before Init runs (tests, early startup)
	Log = zap.NewNop()
}
