package tether

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "tether.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadOptionalParsesConfig(t *testing.T) {
	dir := writeConfig(t, `
engine:
  version: v1.2.3
log:
  verbose: true
  trace_signals: true
`)
	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", cfg.Engine.Version)
	assert.True(t, cfg.Log.Verbose)
	assert.True(t, cfg.Log.TraceSignals)
}

func TestLoadOptionalRejectsBadVersion(t *testing.T) {
	dir := writeConfig(t, `
engine:
  version: not-a-version
`)
	_, err := LoadOptional(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid semver")
}

func TestLoadOptionalRejectsBadYAML(t *testing.T) {
	dir := writeConfig(t, "engine: [broken")
	_, err := LoadOptional(dir)
	require.Error(t, err)
}
