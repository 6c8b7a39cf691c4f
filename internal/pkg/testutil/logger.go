package testutil

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/Khaledaun/LVJAPP/internal/pkg/config"
	"github.com/Khaledaun/LVJAPP/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// RecordingLogger keeps every formatted line in memory so tests can assert on log output.
type RecordingLogger struct {
	mu    sync.Mutex
	lines []string
}

// NewRecordingLogger returns an empty RecordingLogger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) record(level string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprint(args...))
}

func (l *RecordingLogger) Debug(args ...interface{}) { l.record("DEBUG", args...) }
func (l *RecordingLogger) Info(args ...interface{})  { l.record("INFO", args...) }
func (l *RecordingLogger) Warn(args ...interface{})  { l.record("WARN", args...) }
func (l *RecordingLogger) Error(args ...interface{}) { l.record("ERROR", args...) }
func (l *RecordingLogger) Fatal(args ...interface{}) { l.record("FATAL", args...) }

func (l *RecordingLogger) Panic(args ...interface{}) {
	l.record("PANIC", args...)
	panic(fmt.Sprint(args...))
}

// Lines returns a copy of the recorded lines.
func (l *RecordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Contains reports whether any recorded line contains substr.
func (l *RecordingLogger) Contains(substr string) bool {
	for _, line := range l.Lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
