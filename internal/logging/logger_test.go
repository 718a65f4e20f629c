package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelInfo)

	logger.Info("action done", "error", "boom")
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "err=boom")
	assert.NotContains(t, out, "error=")
	assert.NotContains(t, out, "hidden")
}

func TestForDebug(t *testing.T) {
	ctx := context.Background()
	assert.True(t, ForDebug(true).Enabled(ctx, slog.LevelDebug))
	assert.False(t, ForDebug(false).Enabled(ctx, slog.LevelDebug))
}
