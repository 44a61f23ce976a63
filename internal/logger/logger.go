// Package logger holds the process-wide zap logger used for progress and
// warning lines on stderr. Generated artifacts never go through it, so stdout
// stays clean for `-o -` style usage.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global sugared logger instance.
var Logger *zap.SugaredLogger

func init() {
	// Safe no-op logger at package load time so callers never hit a nil
	// pointer before Initialize runs.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger with a human-readable console
// encoder on stderr.
func Initialize() {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(os.Stderr),
		zap.InfoLevel,
	)
	Logger = zap.New(core).Sugar()
}

// Sync flushes any buffered log entries. Best effort on process exit.
func Sync() {
	_ = Logger.Sync()
}
