package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/couchcryptid/meteo-grid/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&config.Config{LogLevel: "info", LogFormat: "json"}, &buf)

	logger.Info("converted", "rows", 24)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "converted", entry["msg"])
	assert.Equal(t, float64(24), entry["rows"])
}

func TestNewLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&config.Config{LogLevel: "warn", LogFormat: "text"}, &buf)

	logger.Debug("noise")
	logger.Info("also noise")
	logger.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "noise")
	assert.Contains(t, out, "kept")
}
