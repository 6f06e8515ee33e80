// Package config handles application configuration loading and validation.
// The config file covers process-level concerns (tick cadence, database
// pool, first-run timer defaults); the runtime timer settings themselves
// live in the durable settings store.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Ibra084/CleanPomodoroApp/internal/core/settings"
)

// Config holds the application configuration.
type Config struct {
	Timer    TimerConfig    `yaml:"timer"`
	Database DatabaseConfig `yaml:"database"`
	DataDir  string         `yaml:"-"` // set by caller, not from config file
}

// TimerConfig holds engine-level options.
type TimerConfig struct {
	// TickInterval is the nominal countdown cadence. One tick decrements
	// the session clock by one second regardless of the wall-clock value.
	TickInterval time.Duration `yaml:"tick_interval"`

	// SweepInterval is how often the background retention sweep runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// Defaults seed the settings store on first run. They are clamped on
	// load like every other settings write.
	Defaults settings.Settings `yaml:"defaults"`
}

// DatabaseConfig holds SQLite connection pool options.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Timer: TimerConfig{
			TickInterval:  time.Second,
			SweepInterval: time.Hour,
			Defaults:      settings.Default(),
		},
		Database: DatabaseConfig{
			MaxOpenConns: 10,
			MaxIdleConns: 5,
			BusyTimeout:  5000,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the
// provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options and
// clamps the seed timer settings.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Timer.TickInterval == 0 {
		c.Timer.TickInterval = defaults.Timer.TickInterval
	}
	if c.Timer.SweepInterval == 0 {
		c.Timer.SweepInterval = defaults.Timer.SweepInterval
	}
	if c.Timer.Defaults == (settings.Settings{}) {
		c.Timer.Defaults = defaults.Timer.Defaults
	}
	c.Timer.Defaults.Clamp()

	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaults.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.Timer.TickInterval < 0 {
		return fmt.Errorf("timer.tick_interval cannot be negative")
	}

	if c.Timer.SweepInterval < 0 {
		return fmt.Errorf("timer.sweep_interval cannot be negative")
	}

	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be at least 1")
	}

	if c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database.max_idle_conns cannot be negative")
	}

	return nil
}
