package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesDecoderDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 300.0, cfg.Decoder.Unit)
	assert.Equal(t, ":8765", cfg.Server.Listen)
}

func TestLoadOverlaysYAMLOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gomorse.yaml")
	yaml := "decoder:\n  unit: 80\n  view: morse\nmetrics:\n  enabled: true\n  push_url: http://localhost:9091\n  push_job: gomorse\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 80.0, cfg.Decoder.Unit)
	assert.Equal(t, "morse", cfg.Decoder.View)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "http://localhost:9091", cfg.Metrics.PushURL)
	// Untouched sections keep their defaults.
	assert.Equal(t, 36, cfg.Decoder.MaxWin)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
