// Package config loads hsctui's program configuration: which executable to
// shell out to, how often the telemetry polls run, and where logs go. This
// is program configuration only; device state is never persisted.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the hsctui configuration tree.
type Config struct {
	Tool ToolConfig `mapstructure:"tool" toml:"tool"`
	Poll PollConfig `mapstructure:"poll" toml:"poll"`
	Log  LogConfig  `mapstructure:"log" toml:"log"`
}

// ToolConfig configures the external device-control command.
type ToolConfig struct {
	// Path is the executable name or path, looked up on PATH when bare.
	Path string `mapstructure:"path" toml:"path"`
	// TimeoutSeconds bounds a single invocation.
	TimeoutSeconds int `mapstructure:"timeout_seconds" toml:"timeout_seconds"`
}

// PollConfig configures the two telemetry loops. A value of 0 disables
// that loop entirely.
type PollConfig struct {
	BatterySeconds int `mapstructure:"battery_seconds" toml:"battery_seconds"`
	ChatmixSeconds int `mapstructure:"chatmix_seconds" toml:"chatmix_seconds"`
}

// LogConfig configures log output.
type LogConfig struct {
	// Path overrides the default log file location. Empty selects the
	// user state dir.
	Path string `mapstructure:"path" toml:"path"`
}

// Timeout returns the tool timeout as a duration.
func (c ToolConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BatteryInterval returns the battery poll interval as a duration.
func (c PollConfig) BatteryInterval() time.Duration {
	return time.Duration(c.BatterySeconds) * time.Second
}

// ChatmixInterval returns the chat-mix poll interval as a duration.
func (c PollConfig) ChatmixInterval() time.Duration {
	return time.Duration(c.ChatmixSeconds) * time.Second
}

// DefaultPath returns the user config file location,
// ~/.config/hsctui/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "hsctui", "config.toml")
	}
	return filepath.Join(home, ".config", "hsctui", "config.toml")
}
