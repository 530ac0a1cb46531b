package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "json"
	DefaultServerAddr      = ":8080"
	DefaultServerMode      = "release"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
	DefaultMaxPayloadBytes = 64 << 10
	DefaultCacheAddr       = "localhost:6379"
	DefaultCacheTTL        = 24 * time.Hour
	DefaultCachePrefix     = "gs1parse:"
	DefaultMetricsPath     = "/metrics"
)

var defaults = map[string]any{
	"log.level":                DefaultLogLevel,
	"log.format":               DefaultLogFormat,
	"log.output_paths":         []string{"stderr"},
	"registry.path":            "",
	"registry.watch":           false,
	"server.addr":              DefaultServerAddr,
	"server.mode":              DefaultServerMode,
	"server.read_timeout":      DefaultReadTimeout,
	"server.write_timeout":     DefaultWriteTimeout,
	"server.shutdown_timeout":  DefaultShutdownTimeout,
	"server.max_payload_bytes": DefaultMaxPayloadBytes,
	"cache.enabled":            false,
	"cache.addr":               DefaultCacheAddr,
	"cache.password":           "",
	"cache.db":                 0,
	"cache.ttl":                DefaultCacheTTL,
	"cache.prefix":             DefaultCachePrefix,
	"metrics.enabled":          true,
	"metrics.path":             DefaultMetricsPath,
}

// setDefaults registers every key with v. Keys viper has never seen are not
// bound to the environment during Unmarshal, so this also makes every
// setting overridable by GS1PARSE_* variables.
func setDefaults(v *viper.Viper) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
}

// ApplyDefaults fills zero fields of cfg. It is for configs built in code;
// Load and LoadFromEnv apply defaults themselves.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxPayloadBytes == 0 {
		cfg.Server.MaxPayloadBytes = DefaultMaxPayloadBytes
	}
	if cfg.Cache.Addr == "" {
		cfg.Cache.Addr = DefaultCacheAddr
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = DefaultCacheTTL
	}
	if cfg.Cache.Prefix == "" {
		cfg.Cache.Prefix = DefaultCachePrefix
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	cfg := &Config{Metrics: MetricsConfig{Enabled: true}}
	ApplyDefaults(cfg)
	return cfg
}
