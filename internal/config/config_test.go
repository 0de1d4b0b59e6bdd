package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://overpass-api.de/api/interpreter", cfg.Overpass.BaseURL)
	assert.Equal(t, 360, cfg.Overpass.TimeoutSecs)
	assert.InDelta(t, 0.5, cfg.Overpass.RateLimit, 1e-9)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "poiforge.db", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POIFORGE_LOG_LEVEL", "debug")
	t.Setenv("POIFORGE_OVERPASS_BASE_URL", "http://localhost:8080/api/interpreter")
	t.Setenv("POIFORGE_OUTPUT_DIR", "/tmp/datasets")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "http://localhost:8080/api/interpreter", cfg.Overpass.BaseURL)
	assert.Equal(t, "/tmp/datasets", cfg.Output.Dir)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	assert.Error(t, InitLogger(LogConfig{Level: "loud", Format: "json"}))
}
