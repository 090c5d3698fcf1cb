package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/tunnel/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNewWithoutPathDiscards(t *testing.T) {
	log, closeFn, err := New(config.LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("dropped")
	require.NoError(t, closeFn())
}

func TestNewWritesToFileAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "demo.log")
	log, closeFn, err := New(config.LogConfig{Path: path, Level: "warn"})
	require.NoError(t, err)

	log.Info("quiet")
	log.Warn("loud", "key", "toolbar")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "quiet")
	require.Contains(t, string(data), "msg=loud")
	require.Contains(t, string(data), "key=toolbar")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "verbose"})
	require.Error(t, err)
}
