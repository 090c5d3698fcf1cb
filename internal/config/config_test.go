package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("TUNNELDEMO_CONFIG", "")
	path := filepath.Join(t.TempDir(), "missing.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "inbox", cfg.UI.StartTab)
	require.Equal(t, 100, cfg.UI.Width)
	require.Equal(t, 32, cfg.UI.Height)
	require.False(t, cfg.UI.ReplayToolbar)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Log.Path)
}

func TestLoadReadsFileAndKeyOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[ui]
start_tab = "editor"
replay_toolbar = true

[log]
path = "/tmp/tunneldemo.log"
level = "debug"

[keys]
quit = ["x", "ctrl+q"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "editor", cfg.UI.StartTab)
	require.True(t, cfg.UI.ReplayToolbar)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "/tmp/tunneldemo.log", cfg.Log.Path)
	require.Equal(t, []string{"x", "ctrl+q"}, cfg.Keys["quit"])
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nstart_tab = \"editor\"\n"), 0o644))
	t.Setenv("TUNNELDEMO_UI_START_TAB", "about")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "about", cfg.UI.StartTab)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nstart_tab = "), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	in := Config{
		UI:   UIConfig{StartTab: "about", Width: 120, Height: 40, ReplayToolbar: true},
		Log:  LogConfig{Path: "demo.log", Level: "warn"},
		Keys: map[string][]string{"help": {"h"}},
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, in.UI, out.UI)
	require.Equal(t, in.Log, out.Log)
	require.Equal(t, []string{"h"}, out.Keys["help"])
}

func TestPathPrecedence(t *testing.T) {
	t.Setenv("TUNNELDEMO_CONFIG", "/env/config.toml")
	require.Equal(t, "/flag.toml", Path("/flag.toml"))
	require.Equal(t, "/env/config.toml", Path(""))

	t.Setenv("TUNNELDEMO_CONFIG", "")
	t.Setenv("HOME", "/home/demo")
	require.Equal(t, filepath.Join("/home/demo", ".config", "tunneldemo", "config.toml"), Path(""))
}
