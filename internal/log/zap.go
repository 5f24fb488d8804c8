package log

import (
	"github.com/jensneuse/abstractlogger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func zapLevel(level abstractlogger.Level) zapcore.Level {
	switch level {
	case abstractlogger.DebugLevel:
		return zapcore.DebugLevel
	case abstractlogger.WarnLevel:
		return zapcore.WarnLevel
	case abstractlogger.ErrorLevel:
		return zapcore.ErrorLevel
	case abstractlogger.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func newZapLogger(level abstractlogger.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	return cfg.Build()
}
