// Package logging builds the zap logger used by the bytesize commands and
// carries it through a context.Context.
package logging

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// Config returns the zap configuration for the CLI. Logs go to stderr so
// they never mix with command output. Only warnings and above are shown
// unless verbose is set.
func Config(verbose bool) zap.Config {
	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""

	return zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       verbose,
		Encoding:          "console",
		EncoderConfig:     encoderCfg,
		DisableStacktrace: !verbose,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// New builds a logger from Config.
func New(verbose bool) (*zap.Logger, error) {
	return Config(verbose).Build()
}

// WithContext returns a copy of ctx carrying log.
func WithContext(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// FromContext returns the logger stored by WithContext, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && log != nil {
			return log
		}
	}
	return zap.NewNop()
}
