package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)
	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, 10, cfg.Report.MaxErrors)
	assert.Equal(t, 10, cfg.Report.MaxSecurity)
	assert.Equal(t, 5, cfg.Report.MaxPerformance)
	assert.Equal(t, 3, cfg.Report.MaxTraces)
}

func TestLoadFromFile(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()

		configContent := `
format: json
quiet: true
report:
  max_errors: 5
  max_traces: 1
`
		configPath := filepath.Join(tmpDir, "fltriage.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

		cfg, err := LoadFromFile(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "json", cfg.Format)
		assert.True(t, cfg.Quiet)
		assert.Equal(t, 5, cfg.Report.MaxErrors)
		assert.Equal(t, 1, cfg.Report.MaxTraces)
		// Unset values keep defaults.
		assert.Equal(t, 10, cfg.Report.MaxSecurity)
		assert.Equal(t, 5, cfg.Report.MaxPerformance)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("returns error for malformed yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "fltriage.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("format: [unclosed"), 0644))

		_, err := LoadFromFile(configPath)
		assert.Error(t, err)
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		t.Setenv("FLTRIAGE_FORMAT", "json")

		cfg := Default()
		applyEnvOverrides(cfg)

		assert.Equal(t, "json", cfg.Format)
	})

	t.Run("booleans accept true and 1", func(t *testing.T) {
		t.Setenv("FLTRIAGE_QUIET", "true")
		t.Setenv("FLTRIAGE_VERBOSE", "1")
		t.Setenv("FLTRIAGE_NO_COLOR", "1")

		cfg := Default()
		applyEnvOverrides(cfg)

		assert.True(t, cfg.Quiet)
		assert.True(t, cfg.Verbose)
		assert.True(t, cfg.NoColor)
	})

	t.Run("other values are ignored", func(t *testing.T) {
		t.Setenv("FLTRIAGE_QUIET", "yes")

		cfg := Default()
		applyEnvOverrides(cfg)

		assert.False(t, cfg.Quiet)
	})
}
