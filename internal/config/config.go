// Package config loads poker-odds settings from HCL files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete poker-odds configuration. Every block is
// optional.
type Config struct {
	Odds    *OddsSettings    `hcl:"odds,block"`
	Server  *ServerSettings  `hcl:"server,block"`
	Display *DisplaySettings `hcl:"display,block"`
}

// OddsSettings controls how queries are computed
type OddsSettings struct {
	Players int `hcl:"players,optional"`
	Workers int `hcl:"workers,optional"`
}

// ServerSettings contains settings for the serve command
type ServerSettings struct {
	Address      string `hcl:"address,optional"`
	CacheSize    int    `hcl:"cache_size,optional"`
	QueryTimeout string `hcl:"query_timeout,optional"`
	LogLevel     string `hcl:"log_level,optional"`
}

// DisplaySettings contains terminal output settings
type DisplaySettings struct {
	Color    *bool `hcl:"color,optional"`
	Progress *bool `hcl:"progress,optional"`
}

// Default returns the default configuration
func Default() *Config {
	color, progress := true, false
	return &Config{
		Odds: &OddsSettings{
			Players: 2,
			Workers: 0, // GOMAXPROCS
		},
		Server: &ServerSettings{
			Address:      ":8080",
			CacheSize:    1024,
			QueryTimeout: "30s",
			LogLevel:     "info",
		},
		Display: &DisplaySettings{
			Color:    &color,
			Progress: &progress,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse decodes configuration from HCL source, e.g. from a test.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var config Config
	diags := gohcl.DecodeBody(body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills missing blocks and zero values from Default.
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Odds == nil {
		c.Odds = defaults.Odds
	}
	if c.Odds.Players == 0 {
		c.Odds.Players = defaults.Odds.Players
	}

	if c.Server == nil {
		c.Server = defaults.Server
	}
	if c.Server.Address == "" {
		c.Server.Address = defaults.Server.Address
	}
	if c.Server.CacheSize == 0 {
		c.Server.CacheSize = defaults.Server.CacheSize
	}
	if c.Server.QueryTimeout == "" {
		c.Server.QueryTimeout = defaults.Server.QueryTimeout
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = defaults.Server.LogLevel
	}

	if c.Display == nil {
		c.Display = defaults.Display
	}
	if c.Display.Color == nil {
		c.Display.Color = defaults.Display.Color
	}
	if c.Display.Progress == nil {
		c.Display.Progress = defaults.Display.Progress
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Odds.Players < 2 {
		return fmt.Errorf("players must be at least 2, got %d", c.Odds.Players)
	}
	if c.Odds.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}

	if c.Server.Address == "" {
		return fmt.Errorf("server address is required")
	}
	if c.Server.CacheSize < 1 {
		return fmt.Errorf("cache size must be positive")
	}
	timeout, err := time.ParseDuration(c.Server.QueryTimeout)
	if err != nil {
		return fmt.Errorf("invalid query timeout: %w", err)
	}
	if timeout <= 0 {
		return fmt.Errorf("query timeout must be positive")
	}
	if _, err := log.ParseLevel(c.Server.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}

	return nil
}

// QueryTimeout returns the parsed server query timeout. Call Validate first.
func (c *Config) QueryTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.QueryTimeout)
	return d
}

// LogLevel returns the parsed server log level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Server.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Color reports whether styled output is enabled
func (c *Config) Color() bool {
	return *c.Display.Color
}

// Progress reports whether the progress spinner is enabled
func (c *Config) Progress() bool {
	return *c.Display.Progress
}
