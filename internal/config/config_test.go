package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, 300.0, cfg.DPI)
	assert.False(t, cfg.ShowTitles)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
}

func TestParseEnvironment(t *testing.T) {
	t.Setenv("COMMUTEPLOT_OUTPUT_DIR", "/tmp/charts")
	t.Setenv("COMMUTEPLOT_DPI", "150")
	t.Setenv("COMMUTEPLOT_SHOW_TITLES", "true")
	t.Setenv("COMMUTEPLOT_LOG_LEVEL", "debug")

	cfg, err := Parse("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/charts", cfg.OutputDir)
	assert.Equal(t, 150.0, cfg.DPI)
	assert.True(t, cfg.ShowTitles)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseDotEnv(t *testing.T) {
	// Register the variable for restoration, then clear it so the file wins.
	t.Setenv("COMMUTEPLOT_DEV_MODE", "false")
	require.NoError(t, os.Unsetenv("COMMUTEPLOT_DEV_MODE"))

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("COMMUTEPLOT_DEV_MODE=true\n"), 0644))

	cfg, err := Parse(envFile)
	require.NoError(t, err)
	assert.True(t, cfg.DevMode)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"dpi too low", "COMMUTEPLOT_DPI", "10"},
		{"dpi not a number", "COMMUTEPLOT_DPI", "high"},
		{"unknown log level", "COMMUTEPLOT_LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Parse("")
			assert.Error(t, err)
		})
	}
}
