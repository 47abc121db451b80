// Package logging builds the zap loggers used by the CLI, TUI and web server
// and carries a few structured helpers shared by them.
package logging

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loggerKey is used to store the logger in context
type loggerKey struct{}

// New builds a logger. format is "json" (production encoder) or "console".
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "", "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// NewWriter builds a JSON logger writing to w. The TUI uses it to keep log
// lines off the terminal it draws on.
func NewWriter(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

// LogError logs an error with structured context
func LogError(logger *zap.Logger, message string, err error, fields ...zap.Field) {
	if logger == nil {
		return
	}
	logger.Error(message, append([]zap.Field{zap.Error(err)}, fields...)...)
}

// LogOperation logs an operation with structured context
func LogOperation(logger *zap.Logger, operation string, fields ...zap.Field) {
	if logger == nil {
		return
	}
	out := fields[:0:0]
	for _, f := range fields {
		// Skip zero-value durations
		if f.Key == "duration" && f.Type == zapcore.DurationType && f.Integer == 0 {
			continue
		}
		out = append(out, f)
	}
	logger.Info(operation, out...)
}

// LogHTTPRequest logs HTTP request details
func LogHTTPRequest(logger *zap.Logger, method, path string, status, bytes int, d time.Duration, fields ...zap.Field) {
	if logger == nil {
		return
	}
	base := []zap.Field{
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Int("bytes", bytes),
		zap.Float64("duration_ms", float64(d.Microseconds())/1000),
	}
	logger.Info("http_request", append(base, fields...)...)
}

// SafeCloseWithLogging closes a resource and logs any errors that occur
func SafeCloseWithLogging(closer io.Closer, logger *zap.Logger, operation string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		LogError(logger, "failed to close resource", err,
			zap.String("operation", operation),
			zap.String("component", "resource_management"))
	}
}

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext retrieves a logger from the context, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}
