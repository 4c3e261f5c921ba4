package sched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig(), Load(""))
	assert.Equal(t, DefaultConfig(), Load("does/not/exist.yml"))
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte("target_latency: 12\nmin_granularity: 3\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg := Load(path)
	assert.Equal(t, int64(12), cfg.TargetLatency)
	assert.Equal(t, int64(3), cfg.MinGranularity)
}

func TestLoadClampsNonsense(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte("target_latency: -4\nmin_granularity: 0\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	assert.Equal(t, DefaultConfig(), Load(path))
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("target_latency: 40\n"), 0o644))

	cfg := Load(path)
	assert.Equal(t, int64(40), cfg.TargetLatency)
	assert.Equal(t, DefaultConfig().MinGranularity, cfg.MinGranularity)
}

func TestSanitizedFillsZeroValue(t *testing.T) {
	assert.Equal(t, DefaultConfig(), Config{}.sanitized())

	// explicit values survive
	cfg := Config{TargetLatency: 9, MinGranularity: 2}
	assert.Equal(t, cfg, cfg.sanitized())
}
