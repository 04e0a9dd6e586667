package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestParseFlags_AllFlags(t *testing.T) {
	// Arrange
	fs := newTestFlagSet(t,
		"-c", "/etc/recook.json",
		"--driver", "bolt",
		"-d", "/tmp/recook.bolt",
		"--locale", "sv",
		"--log-file", "/tmp/recook.log",
		"--log-level", "error",
		"--loading-delay", "100ms",
		"--redirect-delay", "3s",
		"--skip-sample-recipes",
	)

	// Act
	cfg, err := parseFlags(fs)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/etc/recook.json", cfg.JSONFilePath)
	assert.Equal(t, DriverBolt, cfg.Storage.Durable.Driver)
	assert.Equal(t, "/tmp/recook.bolt", cfg.Storage.Durable.DSN)
	assert.Equal(t, "sv", cfg.App.Locale)
	assert.Equal(t, "/tmp/recook.log", cfg.Log.File)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 100*time.Millisecond, cfg.Pacing.LoadingDelay)
	assert.Equal(t, 3*time.Second, cfg.Pacing.RedirectDelay)
	assert.True(t, cfg.Storage.SkipSampleRecipes)
}

func TestParseFlags_NoArgsYieldsZeroConfig(t *testing.T) {
	fs := newTestFlagSet(t)

	cfg, err := parseFlags(fs)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnregisteredFlagsAreIgnored(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)
	fs.String(FlagDSN, "", "")
	require.NoError(t, fs.Parse([]string{"--db", "only.db"}))

	cfg, err := parseFlags(fs)

	require.NoError(t, err)
	assert.Equal(t, "only.db", cfg.Storage.Durable.DSN)
	assert.Empty(t, cfg.App.Locale)
}

func TestParseFlags_WrongFlagTypeFails(t *testing.T) {
	fs := pflag.NewFlagSet("odd", pflag.ContinueOnError)
	fs.Int(FlagLocale, 0, "")
	require.NoError(t, fs.Parse(nil))

	_, err := parseFlags(fs)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading flags")
}

func TestRegisterFlags_InvalidDurationRejectedByParse(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	err := fs.Parse([]string{"--loading-delay", "later"})

	assert.Error(t, err)
}
