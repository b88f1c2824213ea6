package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestNewWithWriter(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&buf, "json", "info")
		logger.Info("gate decided", "decision", "allow")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "gate decided", line["msg"])
		assert.Equal(t, "allow", line["decision"])
	})

	t.Run("level filters debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(&buf, "text", "warn")
		logger.Info("hidden")
		assert.Empty(t, buf.String())

		logger.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})
}
