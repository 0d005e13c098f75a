package config

import (
	"path/filepath"
	"time"
)

// Config holds runtime settings for the Community OS CLI.
type Config struct {
	// BaseURL is the backend root including the "/api" prefix.
	BaseURL        string
	RequestTimeout time.Duration

	// DataDir holds the local session database; DatabaseFile is relative to it.
	DataDir      string
	DatabaseFile string

	OTPResendInterval time.Duration
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8001/api"
	c.RequestTimeout = 30 * time.Second
	c.DataDir = ".communityos"
	c.DatabaseFile = "session.db"
	c.OTPResendInterval = 30 * time.Second
	c.LogLevel = "warn"
}

// DatabasePath joins DataDir and DatabaseFile unless the latter is absolute.
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.DatabaseFile) {
		return c.DatabaseFile
	}
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
