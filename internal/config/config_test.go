package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thompson.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingOptional(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingRequired(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	assert.Error(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "log_level: debug\ngraph:\n  format: mermaid\nmatch:\n  strict: true\n"), true)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "mermaid", cfg.Graph.Format)
	assert.Equal(t, "-", cfg.Graph.Output)
	assert.True(t, cfg.Match.Strict)
	assert.False(t, cfg.Match.ShowStats)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeFile(t, "graph:\n  format: svg\n"), true)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeFile(t, "graph: [\n"), true)
	assert.Error(t, err)
}
