// Package paths provides a single source of truth for ringer file paths.
// All path helpers honor the RINGER_DIR override for isolated testing.
//
// Path resolution precedence:
//  1. RINGER_DIR sets the base directory (derives config and log paths)
//  2. Default behavior (~/.ringer, ~/.config/ringer) when it is unset
package paths

import (
	"os"
	"path/filepath"
)

// EnvRingerDir is the base directory override (e.g., /tmp/ringer-test).
const EnvRingerDir = "RINGER_DIR"

// BaseDir returns the ringer base directory (~/.ringer by default).
func BaseDir() (string, error) {
	if dir := os.Getenv(EnvRingerDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ringer"), nil
}

// ConfigDir returns the ringer config directory (~/.config/ringer by default).
// When RINGER_DIR is set, returns RINGER_DIR/config instead.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvRingerDir); dir != "" {
		return filepath.Join(dir, "config"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ringer"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the ringer log file path (BaseDir/ringer.log).
func LogPath() string {
	base, err := BaseDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ringer.log")
	}
	return filepath.Join(base, "ringer.log")
}

// BotLogPath returns where the bot's output goes while the TUI owns the
// terminal (BaseDir/bot.log).
func BotLogPath() string {
	base, err := BaseDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ringer-bot.log")
	}
	return filepath.Join(base, "bot.log")
}
