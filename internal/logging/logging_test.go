package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json format emits structured events", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "debug", Format: "json", Output: &buf})

		logger.Info().Str("operation", "estimate").Msg("hello")

		out := buf.String()
		assert.Contains(t, out, `"operation":"estimate"`)
		assert.Contains(t, out, `"message":"hello"`)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "chatty", Output: &buf})

		logger.Debug().Msg("hidden")
		logger.Info().Msg("visible")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("console format is human readable", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "info", Format: "console", Output: &buf})

		logger.Info().Msg("tariff loaded")
		assert.Contains(t, buf.String(), "tariff loaded")
	})
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := ComponentLogger(New(Config{Level: "info", Output: &buf}), "engine")

	logger.Info().Msg("split computed")
	assert.Contains(t, buf.String(), `"component":"engine"`)
}

func TestFromContext(t *testing.T) {
	t.Run("returns attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(Config{Level: "info", Output: &buf})
		ctx := logger.WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")
		assert.Contains(t, buf.String(), "from context")
	})

	t.Run("no logger yields disabled logger", func(t *testing.T) {
		logger := FromContext(context.Background())
		require.NotNil(t, logger)
		assert.Equal(t, zerolog.Disabled, logger.GetLevel())
	})
}

func TestTraceIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a ulid when absent", func(t *testing.T) {
		id := GetOrGenerateTraceID(ctx)
		assert.Len(t, id, 26)
		assert.Equal(t, strings.ToUpper(id), id)
	})

	t.Run("reuses an attached trace id", func(t *testing.T) {
		withID := ContextWithTraceID(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", GetOrGenerateTraceID(withID))
		assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", TraceIDFromContext(withID))
	})

	t.Run("empty context has no trace id", func(t *testing.T) {
		assert.Empty(t, TraceIDFromContext(ctx))
	})
}
