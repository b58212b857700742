package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/playsketch-cli/play"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Cleanup(viper.Reset)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
}

func TestLoad_DefaultValues(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(os.Getenv("XDG_DATA_HOME"), AppName), cfg.DataDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(cfg.DataDir, "playsketch.log"), cfg.Log.File)
	assert.Equal(t, play.HalfCourt, cfg.Court)
	assert.Equal(t, play.DefaultRadius, cfg.PlayerRadius)
	assert.Equal(t, time.Second, cfg.Playback.Transition)
	assert.Equal(t, 16*time.Millisecond, cfg.Playback.Interval)
	assert.Equal(t, ".", cfg.Export.Dir)
	assert.Equal(t, time.Second, cfg.Export.GIFInterval)
	assert.Equal(t, 1.0, cfg.Export.Scale)
	assert.Equal(t, filepath.Join(cfg.DataDir, "library.db"), cfg.LibraryPath())
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	cfg := `
data_dir: /tmp/plays
log:
  level: debug
court:
  default: full
playback:
  transition: 750ms
export:
  scale: 2
`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/plays", got.DataDir)
	assert.Equal(t, "debug", got.Log.Level)
	assert.Equal(t, play.FullCourt, got.Court)
	assert.Equal(t, 750*time.Millisecond, got.Playback.Transition)
	assert.Equal(t, 2.0, got.Export.Scale)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("PLAYSKETCH_LOG_LEVEL", "warn")
	t.Setenv("PLAYSKETCH_PLAYBACK_TRANSITION", "2s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 2*time.Second, cfg.Playback.Transition)
}

func TestLoad_UserConfigDir(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), AppName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("player:\n  radius: 20\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.PlayerRadius)
}

func TestLoad_MissingFile(t *testing.T) {
	isolate(t)

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidCourt(t *testing.T) {
	isolate(t)
	t.Setenv("PLAYSKETCH_COURT_DEFAULT", "quarter")

	_, err := Load("")
	assert.ErrorIs(t, err, play.ErrInvalidCourt)
}
