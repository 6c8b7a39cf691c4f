package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// slogLogger backs both the console and the file logger; only the handler differs.
type slogLogger struct {
	logger *slog.Logger
	exit   func(code int)
}

func newSlogLogger(handler slog.Handler) *slogLogger {
	return &slogLogger{logger: slog.New(handler), exit: os.Exit}
}

// NewConsoleLogger creates a human readable logger writing to stdout.
func NewConsoleLogger(level string) Logger {
	return newTextLogger(os.Stdout, level)
}

func newTextLogger(w io.Writer, level string) *slogLogger {
	return newSlogLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

// NewFileLogger creates a JSON logger writing to a size rotated file.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	return newSlogLogger(slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(level)}))
}

func (l *slogLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

func (l *slogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

func (l *slogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

func (l *slogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs at error level and exits the process.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	l.exit(1)
}

// Panic logs at error level and panics with the same message.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}
