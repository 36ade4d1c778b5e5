package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/raysh454/linkscope/internal/interfaces"
)

// ZapLogger adapts a *zap.Logger to the interfaces.Logger contract. The
// daemon uses this implementation; the CLI sticks with StdoutLogger.
type ZapLogger struct {
	l *zap.Logger
}

// ZapConfig controls how the production logger is built.
type ZapConfig struct {
	// Level is the minimum level to emit ("debug", "info", "warn", "error").
	Level string

	// Pretty switches to the human-oriented development encoder.
	Pretty bool

	// Service is attached to every entry as a persistent field.
	Service string
}

// NewZapLogger builds a ZapLogger from config. Unknown level strings fall
// back to info.
func NewZapLogger(c ZapConfig) (*ZapLogger, error) {
	var cfg zap.Config
	if c.Pretty {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	level := new(zapcore.Level)
	if err := level.Set(c.Level); err != nil {
		*level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(*level)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.Fields(zap.String("service", c.Service)))
	if err != nil {
		return nil, err
	}
	return &ZapLogger{l: l}, nil
}

// Sync flushes buffered entries. Call before process exit.
func (z *ZapLogger) Sync() error {
	return z.l.Sync()
}

func zapFields(fields []interfaces.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}

func (z *ZapLogger) Debug(msg string, fields ...interfaces.Field) {
	z.l.Debug(msg, zapFields(fields)...)
}

func (z *ZapLogger) Info(msg string, fields ...interfaces.Field) {
	z.l.Info(msg, zapFields(fields)...)
}

func (z *ZapLogger) Warn(msg string, fields ...interfaces.Field) {
	z.l.Warn(msg, zapFields(fields)...)
}

func (z *ZapLogger) Error(msg string, fields ...interfaces.Field) {
	z.l.Error(msg, zapFields(fields)...)
}

func (z *ZapLogger) With(fields ...interfaces.Field) interfaces.Logger {
	return &ZapLogger{l: z.l.With(zapFields(fields)...)}
}
