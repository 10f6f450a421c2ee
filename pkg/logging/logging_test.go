package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Info("hello", "key", "value")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "key=value")
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Output: &buf})

	logger.Info("quiet")
	logger.Warn("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNop(t *testing.T) {
	// Must not panic and must not write anywhere visible.
	Nop().Error("into the void")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestFanoutWritesToAllHandlers(t *testing.T) {
	var text, jsonBuf bytes.Buffer
	fanout := NewFanout(
		slog.NewTextHandler(&text, nil),
		slog.NewJSONHandler(&jsonBuf, nil),
	)
	logger := slog.New(fanout)

	logger.Info("fan out", "n", 1)
	assert.Contains(t, text.String(), "fan out")
	assert.Contains(t, jsonBuf.String(), `"msg":"fan out"`)
}

func TestFanoutRespectsLevels(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	fanout := NewFanout(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	logger := slog.New(fanout)

	logger.Debug("detail")
	assert.Contains(t, debugBuf.String(), "detail")
	assert.Equal(t, "", warnBuf.String())
}

func TestFanoutWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	fanout := NewFanout(slog.NewTextHandler(&buf, nil))
	logger := slog.New(fanout).With("run_id", "abc")

	logger.Info("tagged")
	line := buf.String()
	assert.True(t, strings.Contains(line, "run_id=abc"), line)
}
