package tlog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a *zap.SugaredLogger to Logger, the way cmd/postcli wires
// zap into a flag-controlled CLI in the teacher repo.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZap builds a ZapLogger at the given level, writing to stderr.
func NewZap(level zapcore.Level) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return &ZapLogger{sugar: logger.Sugar()}, nil
}

func (z *ZapLogger) Info(format string, args ...any)    { z.sugar.Infof(format, args...) }
func (z *ZapLogger) Warning(format string, args ...any) { z.sugar.Warnf(format, args...) }
