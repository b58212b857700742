// Package config loads playsketch settings from defaults, an optional YAML
// file and PLAYSKETCH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/user/playsketch-cli/play"
)

// AppName names the config and data directories.
const AppName = "playsketch"

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	File  string
}

// PlaybackConfig holds animation timing.
type PlaybackConfig struct {
	// Transition is the duration of one frame-to-frame transition.
	Transition time.Duration
	// Interval is the tick period of the animation loop.
	Interval time.Duration
}

// ExportConfig holds exporter settings.
type ExportConfig struct {
	Dir         string
	GIFInterval time.Duration
	Scale       float64
}

// Config is the resolved configuration.
type Config struct {
	DataDir      string
	Log          LogConfig
	Court        play.Court
	PlayerRadius float64
	Playback     PlaybackConfig
	Export       ExportConfig
}

// LibraryPath returns the SQLite library location.
func (c *Config) LibraryPath() string {
	return filepath.Join(c.DataDir, "library.db")
}

// Load resolves the configuration. An explicit path must exist; otherwise
// config.yaml in the user config directory is read when present.
func Load(path string) (*Config, error) {
	dataDir := DefaultDataDir()

	viper.SetDefault("data_dir", dataDir)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "")
	viper.SetDefault("court.default", string(play.HalfCourt))
	viper.SetDefault("player.radius", play.DefaultRadius)
	viper.SetDefault("playback.transition", "1s")
	viper.SetDefault("playback.interval", "16ms")
	viper.SetDefault("export.dir", ".")
	viper.SetDefault("export.gif_interval", "1s")
	viper.SetDefault("export.scale", 1.0)

	viper.SetEnvPrefix("PLAYSKETCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, AppName))
		}
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	court, err := play.ParseCourt(viper.GetString("court.default"))
	if err != nil {
		return nil, fmt.Errorf("court.default: %w", err)
	}

	cfg := &Config{
		DataDir: viper.GetString("data_dir"),
		Log: LogConfig{
			Level: viper.GetString("log.level"),
			File:  viper.GetString("log.file"),
		},
		Court:        court,
		PlayerRadius: viper.GetFloat64("player.radius"),
		Playback: PlaybackConfig{
			Transition: viper.GetDuration("playback.transition"),
			Interval:   viper.GetDuration("playback.interval"),
		},
		Export: ExportConfig{
			Dir:         viper.GetString("export.dir"),
			GIFInterval: viper.GetDuration("export.gif_interval"),
			Scale:       viper.GetFloat64("export.scale"),
		},
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(cfg.DataDir, AppName+".log")
	}
	if cfg.PlayerRadius <= 0 {
		return nil, fmt.Errorf("player.radius must be positive, got %v", cfg.PlayerRadius)
	}
	if cfg.Playback.Transition <= 0 || cfg.Playback.Interval <= 0 {
		return nil, errors.New("playback.transition and playback.interval must be positive")
	}
	return cfg, nil
}

// DefaultDataDir returns $XDG_DATA_HOME/playsketch, falling back to
// ~/.local/share/playsketch.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+AppName)
	}
	return filepath.Join(home, ".local", "share", AppName)
}
