// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - Errors wrap this package's sentinel kinds.
package config

import (
	"fmt"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// MaxSessions bounds the number of live explorer sessions (0 = unbounded).
	MaxSessions int `koanf:"max_sessions"`

	// SessionTTLSeconds removes sessions idle for longer than this.
	SessionTTLSeconds int `koanf:"session_ttl_seconds"`

	// SweepIntervalSeconds sets how often idle sessions are swept.
	SweepIntervalSeconds int `koanf:"sweep_interval_seconds"`

	// HighlightStyle names the chroma style used for sample code.
	HighlightStyle string `koanf:"highlight_style"`

	// LineNumbers enables line numbers in highlighted code.
	LineNumbers bool `koanf:"line_numbers"`

	// HighlightCacheSize bounds the memoised highlight results.
	HighlightCacheSize int `koanf:"highlight_cache_size"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		Addr:                 ":9080",
		MaxSessions:          10_000,
		SessionTTLSeconds:    1800,
		SweepIntervalSeconds: 60,
		HighlightStyle:       "monokai",
		LineNumbers:          false,
		HighlightCacheSize:   64,
	}
}

// SessionTTL returns the idle TTL as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}

// SweepInterval returns the sweep interval as a duration.
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxSessions < 0:
		return fmt.Errorf("%w: max_sessions must not be negative", ErrInvalidConfig)
	case c.SessionTTLSeconds <= 0:
		return fmt.Errorf("%w: session_ttl_seconds must be positive", ErrInvalidConfig)
	case c.SweepIntervalSeconds <= 0:
		return fmt.Errorf("%w: sweep_interval_seconds must be positive", ErrInvalidConfig)
	case c.HighlightCacheSize < 0:
		return fmt.Errorf("%w: highlight_cache_size must not be negative", ErrInvalidConfig)
	}
	return nil
}
