// Package config loads and validates the ringer configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tessro/ringer/internal/paths"
)

// Defaults used when the config file or a key is absent.
const (
	DefaultExecutable = "wheatley"
	DefaultTowerID    = "213576498"
	DefaultStage      = 6
	DefaultMethod     = "Plain Bob"
	DefaultLogLevel   = "info"
)

// Config represents the ringer configuration file.
type Config struct {
	// Executable is the bot to launch. A bare name is resolved via PATH.
	Executable string `toml:"executable" yaml:"executable"`

	// LogLevel is the slog level ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// BotLog is where the TUI sends the bot's stdout and stderr.
	BotLog string `toml:"bot_log" yaml:"bot_log"`

	// Watch reloads the config file when it changes on disk.
	Watch bool `toml:"watch" yaml:"watch"`

	// Defaults seeds the form at startup.
	Defaults DefaultsConfig `toml:"defaults" yaml:"defaults"`
}

// DefaultsConfig holds the initial form values.
type DefaultsConfig struct {
	TowerID string `toml:"tower_id" yaml:"tower_id"`
	Stage   int    `toml:"stage" yaml:"stage"`
	Method  string `toml:"method" yaml:"method"`
}

// Path returns the config file path to use: override if set, else the
// default location.
func Path(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return paths.ConfigPath()
}

// Load loads the config from the default location.
// Returns nil config and nil error if the file doesn't exist.
func Load() (*Config, error) {
	path, err := paths.ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads the config from a specific path.
// Files ending in .yaml or .yml are decoded as YAML, everything else as TOML.
// Returns nil config and nil error if the file doesn't exist.
func LoadFromPath(path string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return &cfg, nil
}

// GetExecutable returns the configured executable or the default.
func (c *Config) GetExecutable() string {
	if c != nil && c.Executable != "" {
		return c.Executable
	}
	return DefaultExecutable
}

// GetLogLevel returns the configured log level or the default.
func (c *Config) GetLogLevel() string {
	if c != nil && c.LogLevel != "" {
		return c.LogLevel
	}
	return DefaultLogLevel
}

// GetBotLog returns the configured bot log path or the default.
func (c *Config) GetBotLog() string {
	if c != nil && c.BotLog != "" {
		return c.BotLog
	}
	return paths.BotLogPath()
}

// WatchEnabled reports whether the config file should be watched.
func (c *Config) WatchEnabled() bool {
	return c != nil && c.Watch
}

// GetTowerID returns the default tower ID.
func (c *Config) GetTowerID() string {
	if c != nil && c.Defaults.TowerID != "" {
		return c.Defaults.TowerID
	}
	return DefaultTowerID
}

// GetStage returns the default stage.
func (c *Config) GetStage() int {
	if c != nil && c.Defaults.Stage != 0 {
		return c.Defaults.Stage
	}
	return DefaultStage
}

// GetMethod returns the default method.
func (c *Config) GetMethod() string {
	if c != nil && c.Defaults.Method != "" {
		return c.Defaults.Method
	}
	return DefaultMethod
}

// Resolved returns a copy with every default filled in.
func (c *Config) Resolved() Config {
	return Config{
		Executable: c.GetExecutable(),
		LogLevel:   c.GetLogLevel(),
		BotLog:     c.GetBotLog(),
		Watch:      c.WatchEnabled(),
		Defaults: DefaultsConfig{
			TowerID: c.GetTowerID(),
			Stage:   c.GetStage(),
			Method:  c.GetMethod(),
		},
	}
}

// WriteTOML encodes the config as TOML.
func (c *Config) WriteTOML(w io.Writer) error {
	if c == nil {
		c = &Config{}
	}
	return toml.NewEncoder(w).Encode(c)
}
