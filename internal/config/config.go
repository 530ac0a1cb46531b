// Package config loads gs1parse settings from a YAML file, a .env file and
// GS1PARSE_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ericlevine/gs1parse/internal/logging"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete runtime configuration.
type Config struct {
	Log      logging.Config `mapstructure:"log" yaml:"log"`
	Registry RegistryConfig `mapstructure:"registry" yaml:"registry"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Cache    CacheConfig    `mapstructure:"cache" yaml:"cache"`
	Metrics  MetricsConfig  `mapstructure:"metrics" yaml:"metrics"`
}

// RegistryConfig points at an external AI table.
type RegistryConfig struct {
	// Path is a JSON or YAML table. Empty means the builtin table.
	Path string `mapstructure:"path" yaml:"path"`
	// Watch reloads the table when the file changes.
	Watch bool `mapstructure:"watch" yaml:"watch"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" yaml:"addr"`
	Mode            string        `mapstructure:"mode" yaml:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	MaxPayloadBytes int64         `mapstructure:"max_payload_bytes" yaml:"max_payload_bytes"`
}

// CacheConfig configures the optional redis result cache.
type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled"`
	Addr     string        `mapstructure:"addr" yaml:"addr"`
	Password string        `mapstructure:"password" yaml:"password"`
	DB       int           `mapstructure:"db" yaml:"db"`
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Prefix   string        `mapstructure:"prefix" yaml:"prefix"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalid)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: server.mode %q", ErrInvalid, c.Server.Mode)
	}
	if c.Server.MaxPayloadBytes <= 0 {
		return fmt.Errorf("%w: server.max_payload_bytes must be positive", ErrInvalid)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: server timeouts must not be negative", ErrInvalid)
	}
	if c.Cache.Enabled {
		if c.Cache.Addr == "" {
			return fmt.Errorf("%w: cache.addr is empty", ErrInvalid)
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("%w: cache.ttl must be positive", ErrInvalid)
		}
	}
	if c.Registry.Watch && c.Registry.Path == "" {
		return fmt.Errorf("%w: registry.watch needs registry.path", ErrInvalid)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path %q must start with /", ErrInvalid, c.Metrics.Path)
	}
	return nil
}
