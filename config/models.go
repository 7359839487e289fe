package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Registry RegistryConfig `mapstructure:"registry"`
	Static   StaticConfig   `mapstructure:"static"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Registry.Backend == "" {
		return errors.New("registry.backend is required")
	}
	if c.Static.Dir == "" {
		return errors.New("static.dir is required")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// RegistryConfig selects the registry backend and its seed catalog.
// An empty SeedFile loads the built-in catalog.
type RegistryConfig struct {
	Backend  string `mapstructure:"backend"`
	SeedFile string `mapstructure:"seed_file"`
}

// StaticConfig describes where the browser front-end is served from.
type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}
