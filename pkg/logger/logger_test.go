package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONFields(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	var buf bytes.Buffer
	mu.Lock()
	setup("production", &buf)
	mu.Unlock()
	defer Init("development")

	Error("catalog fetch failed", errors.New("timeout"), "attempt", 2, "trailing")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "catalog fetch failed", line["message"])
	assert.Equal(t, "timeout", line["error"])
	assert.Equal(t, float64(2), line["attempt"])
	assert.Equal(t, "trailing", line["arg3"])
}

func TestLogger_ProductionSkipsDebug(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	var buf bytes.Buffer
	mu.Lock()
	setup("production", &buf)
	mu.Unlock()
	defer Init("development")

	Debug("noisy")
	assert.Zero(t, buf.Len())

	Info("kept")
	assert.Contains(t, buf.String(), "kept")
}
