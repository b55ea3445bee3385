package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level defines the severity level for log messages.
type Level string

const (
	// LevelInfo is used for general informational messages.
	LevelInfo Level = "info"

	// LevelWarn is used for potentially harmful situations.
	LevelWarn Level = "warn"

	// LevelError is used for error events that still allow the caller to continue.
	LevelError Level = "error"

	// LevelDebug is used for detailed internal information.
	LevelDebug Level = "debug"
)

// Log writes msg with the given level and structured fields to logger.
// Unknown levels are logged as info.
func Log(logger *zap.Logger, level Level, msg string, fields map[string]any) {
	zfields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zfields = append(zfields, zap.Any(k, v))
	}

	switch level {
	case LevelInfo:
		logger.Info(msg, zfields...)
	case LevelWarn:
		logger.Warn(msg, zfields...)
	case LevelError:
		logger.Error(msg, zfields...)
	case LevelDebug:
		logger.Debug(msg, zfields...)
	default:
		logger.Info(msg, zfields...)
	}
}

// NewProduction returns zap's production logger, falling back to a no-op
// logger if it cannot be built.
func NewProduction() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// NewTestLogger returns a console logger writing to stdout at debug level.
func NewTestLogger() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}

// Sync flushes logger, reporting a failure through the logger itself.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Warn("failed to sync logger", zap.Error(err))
	}
}
