package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a starpath invocation.
// Values are populated from .starpath.yaml, STARPATH_* env vars, and CLI flags.
type Config struct {
	SpeedMS     int     `mapstructure:"speed_ms"`     // TUI animation tick in milliseconds
	HistoryPath string  `mapstructure:"history_path"` // run-history database location
	History     bool    `mapstructure:"history"`      // record completed runs
	Density     float64 `mapstructure:"density"`      // default wall density for generation
	Verbose     bool    `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("speed_ms", 80)
	viper.SetDefault("history_path", defaultHistoryPath())
	viper.SetDefault("history", true)
	viper.SetDefault("density", 0.25)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// defaultHistoryPath resolves ~/.starpath/history.db, falling back to the
// working directory when the home directory is unavailable.
func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".starpath-history.db"
	}
	return filepath.Join(home, ".starpath", "history.db")
}
