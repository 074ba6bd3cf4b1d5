package config

import (
	"github.com/kbukum/patternkit/logger"
	"github.com/kbukum/patternkit/server"
)

// Config is the root configuration for the patterns application.
type Config struct {
	// Name identifies the application in logs.
	Name string `mapstructure:"name" yaml:"name"`

	// Environment is the deployment environment.
	Environment string `mapstructure:"environment" yaml:"environment" validate:"omitempty,oneof=development staging production"`

	// Debug lowers the log level to debug regardless of Logging.Level.
	Debug bool `mapstructure:"debug" yaml:"debug"`

	Logging logger.Config `mapstructure:"logging" yaml:"logging"`
	Server  server.Config `mapstructure:"server" yaml:"server"`
	Demo    DemoConfig    `mapstructure:"demo" yaml:"demo"`
}

// DemoConfig tunes demo behavior without changing their output shape.
type DemoConfig struct {
	// Seed drives the flyweight forest layout.
	Seed int64 `mapstructure:"seed" yaml:"seed"`

	// ProxyLatencyMS is the simulated network latency of the proxy demo's
	// slow video library, in milliseconds.
	ProxyLatencyMS int `mapstructure:"proxy_latency_ms" yaml:"proxy_latency_ms" validate:"min=0"`
}

// Default returns a Config populated with sensible defaults.
func Default() Config {
	cfg := Config{
		Name:        "patterns",
		Environment: "development",
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "patterns"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	if c.Demo.Seed == 0 {
		c.Demo.Seed = 1
	}
	if c.Demo.ProxyLatencyMS == 0 {
		c.Demo.ProxyLatencyMS = 20
	}
	if c.Debug {
		c.Logging.Level = "debug"
	}
}

// Validate checks the configuration and returns an error describing the
// first problem found.
func (c *Config) Validate() error {
	if err := ValidateStruct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}
