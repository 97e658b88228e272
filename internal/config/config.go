// Package config loads themeshell configuration from file, environment and
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. THEMESHELL_LOGGING_LEVEL.
const EnvPrefix = "THEMESHELL"

// Config is the full application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Daemon   DaemonConfig   `mapstructure:"daemon"`
}

// DatabaseConfig locates the SQLite file holding settings and history.
type DatabaseConfig struct {
	// Path is the database file. ":memory:" keeps everything in process.
	Path string `mapstructure:"path"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ThemeConfig tunes the propagation engine.
type ThemeConfig struct {
	// DarkClass is the root class token selecting the dark stylesheet.
	DarkClass string `mapstructure:"dark_class"`

	// Delegate enables the framework preset update path. When false every
	// propagation uses direct property writes.
	Delegate bool `mapstructure:"delegate"`

	// History records theme events in the database.
	History bool `mapstructure:"history"`
}

// DaemonConfig is where the gRPC theme service listens.
type DaemonConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DefaultPort is the default gRPC port of the theme daemon.
const DefaultPort = 50761

// DefaultConfigDir returns $XDG_CONFIG_HOME/themeshell or ~/.config/themeshell.
func DefaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "themeshell")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "themeshell")
	}
	return ".themeshell"
}

// DefaultDataDir returns $XDG_DATA_HOME/themeshell or ~/.local/share/themeshell.
func DefaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "themeshell")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "themeshell")
	}
	return ".themeshell"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(DefaultDataDir(), "themeshell.db"))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("theme.dark_class", "p-dark")
	v.SetDefault("theme.delegate", true)
	v.SetDefault("theme.history", true)
	v.SetDefault("daemon.host", "127.0.0.1")
	v.SetDefault("daemon.port", DefaultPort)
}

// Load reads configuration. An explicit path must exist; without one the
// default config directory is searched and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(DefaultConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("database.path is required")
	}
	if strings.TrimSpace(c.Theme.DarkClass) == "" {
		return errors.New("theme.dark_class is required")
	}
	if strings.ContainsAny(c.Theme.DarkClass, " .#") {
		return fmt.Errorf("theme.dark_class %q is not a class token", c.Theme.DarkClass)
	}
	if c.Daemon.Port <= 0 || c.Daemon.Port > 65535 {
		return fmt.Errorf("daemon.port %d out of range", c.Daemon.Port)
	}
	return nil
}
