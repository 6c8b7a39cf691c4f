//go:build unit
// +build unit

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Khaledaun/LVJAPP/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, config.LogLevelWarning)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestTextLogger_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, config.LogLevelInfo)

	exitCode := -1
	logger.exit = func(code int) { exitCode = code }

	logger.Fatal("database unreachable")

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, buf.String(), "database unreachable")
}

func TestTextLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := newTextLogger(&buf, config.LogLevelInfo)

	assert.PanicsWithValue(t, "boom", func() {
		logger.Panic("boom")
	})
	assert.Contains(t, buf.String(), "boom")
}

func TestNewFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "lvj.log")

	logger := NewFileLogger(config.LogLevelInfo, logPath, 10, 3, 28)
	require.NotNil(t, logger)

	logger.Info("case created")
	logger.Warn("notification skipped")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, `"msg":"case created"`)
	assert.Contains(t, output, `"level":"WARN"`)
}

func TestNewZapLogger(t *testing.T) {
	logger, err := NewZapLogger(config.LogLevelInfo)
	require.NoError(t, err)

	require.NotPanics(t, func() {
		logger.Debug("test")
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}
