package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xqrs/tview"
	"github.com/xqrs/tview/internal/config"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "stickydemo version "+Version+"\n", out.String())
}

func TestLoadAppliesFlagsOverConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("sections = 4\nitems_per_section = 2\n"), 0o644))

	opts := &rootOptions{}
	cmd := opts.command()
	require.NoError(t, cmd.Flags().Parse([]string{"--config", path, "--items", "9", "--log-level", "DEBUG"}))

	cfg, err := opts.load(cmd)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Sections)
	assert.Equal(t, 9, cfg.ItemsPerSection)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalidFlags(t *testing.T) {
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "absent.toml"))

	opts := &rootOptions{}
	cmd := opts.command()
	require.NoError(t, cmd.Flags().Parse([]string{"--sections", "0"}))

	_, err := opts.load(cmd)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoadFailsOnMissingExplicitConfig(t *testing.T) {
	opts := &rootOptions{}
	cmd := opts.command()
	require.NoError(t, cmd.Flags().Parse([]string{"--config", filepath.Join(t.TempDir(), "absent.toml")}))

	_, err := opts.load(cmd)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	logger, closeLog, err := newLogger(config.Log{Level: "debug", File: path})
	require.NoError(t, err)

	logger.Debug("hello", "k", 1)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "k=1")
}

func TestNewDemoWiresStickyList(t *testing.T) {
	cfg := config.Default()
	cfg.Sections = 2
	cfg.ItemsPerSection = 2

	_, list := newDemo(cfg, log.New(&bytes.Buffer{}))

	assert.NotNil(t, list.StickyAdapter())
	assert.Equal(t, 4+2, list.StickyAdapter().ItemCount())
	assert.Contains(t, list.GetFooter(), "q quit")
	assert.Contains(t, list.GetFooter(), "↓/j down")

	assert.Equal(t, tview.RedrawCommand{}, list.InputHandler(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone)))
	assert.Equal(t, 0, list.Cursor())
}
