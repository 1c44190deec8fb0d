package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceID(t *testing.T) {
	id := NewTraceID()
	_, err := ulid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, NewTraceID())
}

func TestGetOrGenerateTraceID(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "01ABC")
	assert.Equal(t, "01ABC", GetOrGenerateTraceID(ctx))
	assert.NotEmpty(t, GetOrGenerateTraceID(context.Background()))
	assert.Empty(t, TraceIDFromContext(context.Background()))
}

func TestTraceHook(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Hook(TraceHook{})
	ctx := ContextWithTraceID(context.Background(), "run-1")

	logger.Info().Ctx(ctx).Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "run-1", line["trace_id"])
}

func TestNewLoggerWithPath(t *testing.T) {
	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "bisko.log")
		result := NewLoggerWithPath(Config{Level: "debug", Output: OutputFile, File: path})
		defer func() { require.NoError(t, result.Close()) }()

		assert.True(t, result.UsingFile)
		assert.Equal(t, path, result.FilePath)
		assert.Equal(t, zerolog.DebugLevel, result.Logger.GetLevel())
	})

	t.Run("invalid level defaults to info", func(t *testing.T) {
		result := NewLoggerWithPath(Config{Level: "loud"})
		assert.False(t, result.UsingFile)
		assert.Equal(t, zerolog.InfoLevel, result.Logger.GetLevel())
	})

	t.Run("unwritable file falls back to stderr", func(t *testing.T) {
		dir := t.TempDir()
		result := NewLoggerWithPath(Config{Output: OutputFile, File: dir})
		assert.True(t, result.FallbackUsed)
		assert.False(t, result.UsingFile)
		assert.NotEmpty(t, result.FallbackReason)
	})
}
