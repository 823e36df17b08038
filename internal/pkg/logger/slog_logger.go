package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/MGTheTrain/servicehub/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// slogLogger adapts a slog.Logger to Logger
type slogLogger struct {
	logger *slog.Logger
	exit   func(code int)
}

func newSlogLogger(handler slog.Handler) *slogLogger {
	return &slogLogger{logger: slog.New(handler), exit: os.Exit}
}

// NewConsoleLogger writes human readable text records to stdout.
func NewConsoleLogger(level string) Logger {
	return newTextLogger(os.Stdout, level)
}

func newTextLogger(w io.Writer, level string) *slogLogger {
	return newSlogLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

// NewFileLogger writes JSON records to a file rotated by size and age.
func NewFileLogger(settings *config.LoggerSettings) Logger {
	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   true,
	}
	return newSlogLogger(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(settings.LogLevel)}))
}

func (l *slogLogger) Info(args ...interface{}) {
	l.log(slog.LevelInfo, args...)
}

func (l *slogLogger) Warn(args ...interface{}) {
	l.log(slog.LevelWarn, args...)
}

func (l *slogLogger) Error(args ...interface{}) {
	l.log(slog.LevelError, args...)
}

// Fatal logs at error level and exits the process.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.log(slog.LevelError, args...)
	l.exit(1)
}

// Panic logs at error level and panics with the formatted arguments.
func (l *slogLogger) Panic(args ...interface{}) {
	l.log(slog.LevelError, args...)
	panic(formatArgs(args...))
}

// With ignores arguments that are not clean key/value pairs.
func (l *slogLogger) With(args ...interface{}) Logger {
	attrs, ok := attrsOf(args)
	if !ok {
		return l
	}
	return &slogLogger{logger: l.logger.With(attrs...), exit: l.exit}
}

func (l *slogLogger) log(level slog.Level, args ...interface{}) {
	msg, attrs := splitArgs(args...)
	l.logger.Log(context.Background(), level, msg, attrs...)
}
