package logger

import (
	"context"
)

var (
	// global is the logger returned by FromContext when the context carries none.
	//nolint:gochecknoglobals // Hosts that never configure a logger still get output.
	global *Logger
)

func init() { //nolint:gochecknoinits // The fallback logger must exist before first use.
	l, err := New(Config{Threshold: SeverityInfo})
	if err != nil {
		panic(err)
	}

	SetDefault(l)
}

// loggerKey is the context key under which a *Logger is stored.
type loggerKey struct{}

// Default returns the fallback logger: JSON to stdout at info.
func Default() *Logger {
	return global
}

// SetDefault replaces the fallback logger.
// This function is not thread-safe.
func SetDefault(l *Logger) {
	global = l
}

// ToContext returns a copy of ctx carrying l.
func ToContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the logger stored in ctx, or Default.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey{}).(*Logger); ok && l != nil {
		return l
	}

	return Default()
}
