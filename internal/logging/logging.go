// Package logging configures zerolog for the CLI and provides the
// context plumbing used across packages: every operation logs through a
// context-carried logger tagged with a component name and a trace ID.
package logging

import (
	"context"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name: debug, info, warn, error. Unknown
	// values fall back to info.
	Level string
	// Format is "console" or "json". Console output goes through
	// zerolog.ConsoleWriter; anything else emits structured JSON.
	Format string
	// Output overrides the destination. Defaults to stderr so command
	// output on stdout stays clean.
	Output io.Writer
}

// New builds a logger from the config.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ComponentLogger tags a logger with the component emitting the events.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger
// when none was attached. Wraps zerolog's own context accessor so
// callers only import this package.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

type traceIDKey struct{}

// ContextWithTraceID attaches a trace ID to the context.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID attached to ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the context's trace ID, minting a new
// ULID when the context has none.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	now := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0) //nolint:gosec // Trace IDs are not security sensitive.
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}
