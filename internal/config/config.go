package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig            `mapstructure:"ui"`
	Log  LogConfig           `mapstructure:"log"`
	Keys map[string][]string `mapstructure:"keys"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartTab      string `mapstructure:"start_tab"`
	Width         int    `mapstructure:"width"`
	Height        int    `mapstructure:"height"`
	ReplayToolbar bool   `mapstructure:"replay_toolbar"`
}

// LogConfig holds log sink settings. An empty Path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

const envPrefix = "TUNNELDEMO"

// Path returns the config file location: explicit wins, then
// $TUNNELDEMO_CONFIG, then ~/.config/tunneldemo/config.toml.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(envPrefix + "_CONFIG"); env != "" {
		return env
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "tunneldemo", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix TUNNELDEMO_.
// A missing config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.start_tab", "inbox")
	v.SetDefault("ui.width", 100)
	v.SetDefault("ui.height", 32)
	v.SetDefault("ui.replay_toolbar", false)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(Path(path))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg as TOML, creating the config directory if needed.
func Save(path string, cfg Config) error {
	path = Path(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.start_tab", cfg.UI.StartTab)
	v.Set("ui.width", cfg.UI.Width)
	v.Set("ui.height", cfg.UI.Height)
	v.Set("ui.replay_toolbar", cfg.UI.ReplayToolbar)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
