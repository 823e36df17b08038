package logger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/MGTheTrain/servicehub/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// InitLogger initializes the singleton logger.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the initialized logger instance.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

func newLogger(c *config.LoggerSettings) (Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch c.LogType {
	case config.LogTypeConsole:
		return NewConsoleLogger(c.LogLevel), nil
	case config.LogTypeFile:
		if c.FilePath == "" {
			return nil, fmt.Errorf("file path required for file logger")
		}
		return NewFileLogger(c), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", c.LogType)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError, config.LogLevelCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// splitArgs turns ("msg", "k1", v1, "k2", v2) into a message plus slog attributes.
// Anything that is not a clean key/value tail falls back to fmt.Sprint.
func splitArgs(args ...interface{}) (string, []any) {
	if len(args) == 0 {
		return "", nil
	}

	if msg, ok := args[0].(string); ok {
		if attrs, ok := attrsOf(args[1:]); ok {
			return msg, attrs
		}
	}
	return fmt.Sprint(args...), nil
}

// attrsOf converts alternating string keys and values into slog attributes
func attrsOf(pairs []interface{}) ([]any, bool) {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return nil, false
	}

	attrs := make([]any, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, false
		}
		attrs = append(attrs, slog.Any(key, pairs[i+1]))
	}
	return attrs, true
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
