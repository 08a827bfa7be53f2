package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(afero.NewMemMapFs(), "/nonexistent/makeregex.yml")
	require.NoError(t, err)
	assert.False(t, cfg.Accents)
	assert.True(t, cfg.Color)
}

func TestLoadReadsValues(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	content := "accents: true\ncolor: false\n"
	require.NoError(t, afero.WriteFile(fs, "/home/user/.config/makeregex/makeregex.yml", []byte(content), 0o600))

	cfg, err := Load(fs, "/home/user/.config/makeregex/makeregex.yml")
	require.NoError(t, err)
	assert.True(t, cfg.Accents)
	assert.False(t, cfg.Color)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg.yml", []byte("accents: true\n"), 0o600))

	cfg, err := Load(fs, "/cfg.yml")
	require.NoError(t, err)
	assert.True(t, cfg.Accents)
	assert.True(t, cfg.Color, "unset fields keep their defaults")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg.yml", []byte("accents: [broken\n"), 0o600))

	_, err := Load(fs, "/cfg.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
