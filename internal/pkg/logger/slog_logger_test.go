//go:build unit
// +build unit

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/servicehub/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := newTextLogger(&buf, config.LogLevelWarning)

	log.Info("hidden message")
	log.Warn("warn message")
	log.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "hidden message")
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "level=ERROR")
}

func TestTextLogger_StructuredAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := newTextLogger(&buf, config.LogLevelInfo)

	log.Info("booking created", "booking_id", "b-1", "dealer_id", "d-1")

	output := buf.String()
	assert.Contains(t, output, `msg="booking created"`)
	assert.Contains(t, output, "booking_id=b-1")
	assert.Contains(t, output, "dealer_id=d-1")
}

func TestTextLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log := newTextLogger(&buf, config.LogLevelInfo)

	scoped := log.With("topic", "servicehub.notifications")
	scoped.Info("delivered", "event", "BOOKING_CREATED")
	log.Info("unscoped")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "topic=servicehub.notifications")
	assert.Contains(t, string(lines[0]), "event=BOOKING_CREATED")
	assert.NotContains(t, string(lines[1]), "topic=")

	assert.Same(t, log, log.With("dangling"))
}

func TestTextLogger_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	log := newTextLogger(&buf, config.LogLevelInfo)

	exitCode := -1
	log.exit = func(code int) { exitCode = code }

	log.Fatal("cannot start", "error", "boom")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, buf.String(), "cannot start")
}

func TestTextLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	log := newTextLogger(&buf, config.LogLevelInfo)

	assert.PanicsWithValue(t, "broken invariant", func() {
		log.Panic("broken ", "invariant")
	})
}

func TestNewFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "servicehub.log")

	log := NewFileLogger(&config.LoggerSettings{
		LogLevel:   config.LogLevelInfo,
		LogType:    config.LogTypeFile,
		FilePath:   logPath,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	})
	require.NotNil(t, log)

	log.Info("info message", "component", "registration")
	log.With("request", "r-1").Warn("warn message")
	log.Error("error message")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	logOutput := string(content)
	assert.Contains(t, logOutput, `"component":"registration"`)
	assert.Contains(t, logOutput, `"request":"r-1"`)
	assert.Contains(t, logOutput, `"level":"WARN"`)
	assert.Contains(t, logOutput, `"msg":"error message"`)
}

func TestNewConsoleLogger(t *testing.T) {
	log := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, log)

	require.NotPanics(t, func() {
		log.Info("test")
		log.With("k", "v").Warn("test")
	})
}
