// Package config loads application configuration from an optional YAML file
// and CONSUMPTION_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig
	Tracker TrackerConfig
	Shell   ShellConfig
	Logging LoggingConfig
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host string
	Port int
}

// TrackerConfig configures aggregation thresholds.
type TrackerConfig struct {
	// DailyCalorieLimit is compared against the grand total.
	DailyCalorieLimit int64
}

// ShellConfig configures the interactive shell.
type ShellConfig struct {
	// StartupDelayMs is slept once before the menu loop starts.
	StartupDelayMs int
}

// LoggingConfig selects the zap logger flavor.
type LoggingConfig struct {
	Development bool
}

const envPrefix = "CONSUMPTION_"

// Load reads configuration from the given YAML file (skipped when path is
// empty) and overlays environment variables, then applies defaults.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("stat config file: %w", err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "_", ".")
			return key, value
		},
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env provider: %w", err)
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	c.setDefaults()
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) setDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Tracker.DailyCalorieLimit == 0 {
		c.Tracker.DailyCalorieLimit = 1500
	}
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Tracker.DailyCalorieLimit < 0 {
		return fmt.Errorf("tracker.dailycalorielimit must not be negative: %d", c.Tracker.DailyCalorieLimit)
	}
	if c.Shell.StartupDelayMs < 0 {
		return fmt.Errorf("shell.startupdelayms must not be negative: %d", c.Shell.StartupDelayMs)
	}
	return nil
}

// Addr returns the host:port the HTTP server binds to.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
