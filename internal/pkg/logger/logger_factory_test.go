//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Khaledaun/LVJAPP/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

const configsDir = "../../../configs"

// The shipped configs must produce the backend they name.
func TestInitLogger_ShippedConfigs(t *testing.T) {
	t.Setenv("SENDGRID_API_KEY", "SG.test")

	tests := []struct {
		file     string
		expected interface{}
	}{
		{"rest-app.yaml", &slogLogger{}},
		{"rest-app.postgres.yaml", &zapLogger{}},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			cfg, err := config.InitializeRestConfig(filepath.Join(configsDir, tt.file))
			require.NoError(t, err)

			require.NoError(t, InitLogger(&cfg.Logger))
			log, err := GetLogger()
			require.NoError(t, err)
			assert.IsType(t, tt.expected, log)
		})
	}
}

func TestInitLogger_EnvSelectsFileBackend(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	logPath := filepath.Join(t.TempDir(), "lvj-api.log")
	t.Setenv("LOG_TYPE", config.LogTypeFile)
	t.Setenv("LOG_LEVEL", config.LogLevelCritical)
	t.Setenv("LOG_FILE_PATH", logPath)

	cfg, err := config.InitializeRestConfig(filepath.Join(configsDir, "rest-app.yaml"))
	require.NoError(t, err)
	require.NoError(t, InitLogger(&cfg.Logger))

	log, err := GetLogger()
	require.NoError(t, err)
	log.Warn("Failed to send intake notification for case case_1")
	log.Error("Failed to record status change for case case_1")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1, "critical keeps only error entries")
	assert.Contains(t, lines[0], `"msg":"Failed to record status change for case case_1"`)
}

func TestInitLogger_RejectsBadSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings config.LoggerSettings
	}{
		{"unknown level", config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeZap}},
		{"unknown backend", config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"}},
		{"file without rotation", config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: "lvj.log"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			assert.Error(t, InitLogger(&tt.settings))
			log, err := GetLogger()
			assert.ErrorContains(t, err, "not initialized")
			assert.Nil(t, log)
		})
	}
}

// A second InitLogger keeps the first backend, so later commands cannot swap it.
func TestInitLogger_FirstSettingsWin(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeZap}))
	first, err := GetLogger()
	require.NoError(t, err)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole}))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.IsType(t, &zapLogger{}, second)
}

func TestLevels_SlogAndZapAgree(t *testing.T) {
	tests := []struct {
		level string
		slog  slog.Level
		zap   zapcore.Level
	}{
		{config.LogLevelDebug, slog.LevelDebug, zapcore.DebugLevel},
		{config.LogLevelInfo, slog.LevelInfo, zapcore.InfoLevel},
		{config.LogLevelWarning, slog.LevelWarn, zapcore.WarnLevel},
		{config.LogLevelError, slog.LevelError, zapcore.ErrorLevel},
		{config.LogLevelCritical, slog.LevelError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.slog, parseLevel(tt.level))
			assert.Equal(t, tt.zap, zapLevel(tt.level))

			log, err := NewZapLogger(tt.level)
			require.NoError(t, err)
			core := log.(*zapLogger).sugar.Desugar().Core()
			assert.True(t, core.Enabled(tt.zap))
			if tt.zap > zapcore.DebugLevel {
				assert.False(t, core.Enabled(tt.zap-1))
			}
		})
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "", formatArgs())
	assert.Equal(t, "Issued session for user dev-user", formatArgs("Issued session for user ", "dev-user"))
	assert.Equal(t, "SKIP_DB enabled, serving mock data: users=2", formatArgs("SKIP_DB enabled, serving mock data: ", "users=2"))
}
