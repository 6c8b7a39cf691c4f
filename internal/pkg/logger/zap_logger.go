package logger

import (
	"fmt"

	"github.com/Khaledaun/LVJAPP/internal/pkg/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger emits production JSON through zap's sugared API.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a zap production logger at the given level.
func NewZapLogger(level string) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return &zapLogger{sugar: base.Sugar()}, nil
}

func zapLevel(level string) zapcore.Level {
	switch level {
	case config.LogLevelDebug:
		return zapcore.DebugLevel
	case config.LogLevelWarning:
		return zapcore.WarnLevel
	case config.LogLevelError, config.LogLevelCritical:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) Debug(args ...interface{}) { l.sugar.Debug(formatArgs(args...)) }
func (l *zapLogger) Info(args ...interface{})  { l.sugar.Info(formatArgs(args...)) }
func (l *zapLogger) Warn(args ...interface{})  { l.sugar.Warn(formatArgs(args...)) }
func (l *zapLogger) Error(args ...interface{}) { l.sugar.Error(formatArgs(args...)) }
func (l *zapLogger) Fatal(args ...interface{}) { l.sugar.Fatal(formatArgs(args...)) }
func (l *zapLogger) Panic(args ...interface{}) { l.sugar.Panic(formatArgs(args...)) }
