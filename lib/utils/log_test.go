package utils

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Plain(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelDebug, false).With(ComponentKey, "engine")

	logger.Debug("Extracted words", "count", 3, "phrase", "The Quick Fox")

	line := buf.String()
	assert.Regexp(t, regexp.MustCompile(`^\d+\.\d \[engine\] Extracted words count=3 phrase="The Quick Fox"\n$`), line)
}

func TestHandler_DefaultComponent(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, slog.LevelInfo, false).Info("hello")

	assert.Contains(t, buf.String(), "[acronymcreator] hello")
}

func TestHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn, false)

	logger.Info("hidden")
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "WARN shown")

	logger.Error("failed", "error", "boom")
	assert.Contains(t, buf.String(), "ERROR failed error=boom")
}

func TestHandler_Color(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo, true).With(ComponentKey, "cli")

	logger.Error("bad")

	line := buf.String()
	assert.Contains(t, line, getColorForComponent("cli")+"[cli]"+Reset)
	assert.Contains(t, line, Red+Bold+"ERROR"+Reset+" bad")
	assert.True(t, strings.HasPrefix(line, Dim))
}

func TestHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo, false).WithGroup("opts").With("min", 2)

	logger.Info("effective", "max", "unbounded")

	assert.Contains(t, buf.String(), "effective opts.min=2 opts.max=unbounded")
}

func TestGetColorForComponent_Stable(t *testing.T) {
	require.Equal(t, getColorForComponent("engine"), getColorForComponent("engine"))
	assert.Contains(t, componentColors, getColorForComponent("config"))
}
