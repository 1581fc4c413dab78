package logging

import (
	"context"
	"log/slog"
)

// FieldComponent names the attribute the console handler lifts into the
// message prefix.
const FieldComponent = "component"

// Attr aliases slog.Attr so callers can build fields without importing slog
// alongside this package.
type Attr = slog.Attr

func String(key, value string) Attr    { return slog.String(key, value) }
func Int(key string, value int) Attr   { return slog.Int(key, value) }
func Bool(key string, value bool) Attr { return slog.Bool(key, value) }
func Any(key string, value any) Attr   { return slog.Any(key, value) }

// Error wraps an error under the conventional "error" key. A nil error
// produces an empty string value.
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Args converts attrs into the variadic any form accepted by slog methods.
func Args(attrs ...Attr) []any {
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	return args
}

// NewComponentLogger returns a child logger whose records carry the given
// component name.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// NoopHandler discards every record.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }
func (h NoopHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h NoopHandler) WithGroup(string) slog.Handler           { return h }

// NewNop returns a logger that discards all output.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}
