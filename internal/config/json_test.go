package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"version": "1.0.0",
			"locale": "de",
			"featured_count": 4
		},
		"storage": {
			"durable": { "driver": "bolt", "dsn": "/var/data/recook.bolt" },
			"skip_sample_recipes": true
		},
		"pacing": {
			"loading_delay": "750ms",
			"redirect_delay": 1000000000
		},
		"log": {
			"file": "/var/log/recook.log",
			"level": "debug"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "de", cfg.App.Locale)
	assert.Equal(t, 4, cfg.App.FeaturedCount)

	assert.Equal(t, DriverBolt, cfg.Storage.Durable.Driver)
	assert.Equal(t, "/var/data/recook.bolt", cfg.Storage.Durable.DSN)
	assert.True(t, cfg.Storage.SkipSampleRecipes)

	assert.Equal(t, 750*time.Millisecond, cfg.Pacing.LoadingDelay)
	assert.Equal(t, time.Second, cfg.Pacing.RedirectDelay)

	assert.Equal(t, "/var/log/recook.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"pacing":{"loading_delay":"eventually"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(1500 * time.Millisecond))

	require.NoError(t, err)
	assert.JSONEq(t, `"1.5s"`, string(b))
}
