package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
sections = 3
header_height = 2

[log]
level = "DEBUG"
file = "/tmp/stickydemo.log"
`))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Sections)
	assert.Equal(t, 2, cfg.HeaderHeight)
	assert.Equal(t, Default().ItemsPerSection, cfg.ItemsPerSection)
	assert.Equal(t, Default().Leading, cfg.Leading)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/stickydemo.log", cfg.Log.File)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"zero sections":     "sections = 0",
		"negative items":    "items_per_section = -1",
		"negative leading":  "leading = -2",
		"negative trailing": "trailing = -1",
		"negative height":   "header_height = -1",
		"negative gap":      "gap = -1",
		"unknown level":     "[log]\nlevel = \"loud\"",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("colour = \"red\""))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	_, err := Parse([]byte("sections = "))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("sections = 4\ngap = 1\n"), 0o644))

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Sections)
	assert.Equal(t, 1, cfg.Gap)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(path, false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsOtherExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sections: 3"), 0o644))

	_, err := Load(path, false)
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "stickydemo", "config.toml"), DefaultPath())

	t.Setenv(EnvConfigPath, "/etc/sticky.toml")
	assert.Equal(t, "/etc/sticky.toml", DefaultPath())
}

func TestMarshalRoundTrip(t *testing.T) {
	want := Default()
	want.HeaderHeight = 3

	data, err := want.Marshal()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
