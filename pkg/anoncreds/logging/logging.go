package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// RedactedValue replaces the value of every attribute built by Redacted.
const RedactedValue = "[redacted]"

// Logger is the part of slog the binding writes through. Every method takes
// the call's context so handlers can pick up trace ids.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New adapts logger. Nil means slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return handlerLogger{base: logger}
}

// Discard returns a Logger whose handler is disabled at every level.
func Discard() Logger {
	return handlerLogger{base: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(127),
	}))}
}

var levels = map[string]slog.Level{
	"":        slog.LevelInfo,
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// ParseLevel maps a level name from ANONCREDS_LOG_LEVEL, ignoring case and
// surrounding space. Empty is info.
func ParseLevel(s string) (slog.Level, error) {
	lvl, ok := levels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
	return lvl, nil
}

type handlerLogger struct {
	base *slog.Logger
}

func (l handlerLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.base.Log(ctx, slog.LevelDebug, msg, args...)
}

func (l handlerLogger) Info(ctx context.Context, msg string, args ...any) {
	l.base.Log(ctx, slog.LevelInfo, msg, args...)
}

func (l handlerLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.base.Log(ctx, slog.LevelWarn, msg, args...)
}

func (l handlerLogger) Error(ctx context.Context, msg string, args ...any) {
	l.base.Log(ctx, slog.LevelError, msg, args...)
}

func (l handlerLogger) With(args ...any) Logger {
	return handlerLogger{base: l.base.With(args...)}
}

// Redacted records that a secret named key took part in the call without
// recording its value.
func Redacted(key string) slog.Attr {
	return slog.String(key, RedactedValue)
}
