// Package config holds the tunable settings of the ticktime CLI.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"github.com/BYTE-6D65/ticktime/pkg/logging"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TICKTIME_"

// Clock source names accepted by Config.Clock.
const (
	ClockPlatform = "platform"
	ClockSystem   = "system"
)

// Config holds all tunable parameters for the CLI.
// Values can be set via:
//  1. Defaults (DefaultConfig)
//  2. Environment variables (TICKTIME_*)
//  3. Command-line flags
//
// Precedence: Flags > Env Vars > Defaults
type Config struct {
	// Logging
	LogLevel      string `env:"LOG_LEVEL"`      // debug, info, warn, error
	LogProduction bool   `env:"LOG_PRODUCTION"` // JSON output instead of console

	// Wall Clock
	UTC bool `env:"UTC"` // Report UTC instead of local time

	// Tick Source
	Clock string `env:"CLOCK"` // platform or system

	// Metrics
	MetricsAddr string `env:"METRICS_ADDR"` // Serve /metrics here; empty disables

	// Demo
	LapCapacity   int           `env:"LAP_CAPACITY"`   // Laps kept by the recorder
	FrameInterval time.Duration `env:"FRAME_INTERVAL"` // Demo redraw interval
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "info",
		LogProduction: false,

		UTC: false,

		Clock: ClockPlatform,

		MetricsAddr: "",

		LapCapacity:   100,
		FrameInterval: 16 * time.Millisecond,
	}
}

// LoadFromEnv loads configuration from environment variables.
// Returns a Config with defaults, overridden by any TICKTIME_* env vars found.
func LoadFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// BindFlags registers flags that override c on fs. Current values of c
// become the flag defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&c.LogProduction, "log-json", c.LogProduction, "write logs as JSON")
	fs.BoolVar(&c.UTC, "utc", c.UTC, "report UTC instead of local time")
	fs.StringVar(&c.Clock, "clock", c.Clock, `tick source: "platform" or "system"`)
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address")
	fs.IntVar(&c.LapCapacity, "laps", c.LapCapacity, "number of laps kept by the demo")
	fs.DurationVar(&c.FrameInterval, "frame-interval", c.FrameInterval, "demo redraw interval")
}

// Validate checks that configuration values are sensible.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if c.Clock != ClockPlatform && c.Clock != ClockSystem {
		return fmt.Errorf("clock must be %q or %q, got %q", ClockPlatform, ClockSystem, c.Clock)
	}

	if c.LapCapacity <= 0 {
		return fmt.Errorf("lap capacity must be > 0, got %d", c.LapCapacity)
	}

	if c.FrameInterval < time.Millisecond {
		return fmt.Errorf("frame interval must be >= 1ms, got %s", c.FrameInterval)
	}

	return nil
}

// String returns a human-readable summary of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf(`ticktime Configuration:
  Logging:
    Level:      %s
    JSON:       %t

  Clock:
    Source:     %s
    UTC:        %t

  Demo:
    Laps:       %d
    Redraw:     %s

  Metrics: %s
`,
		c.LogLevel,
		c.LogProduction,
		c.Clock,
		c.UTC,
		c.LapCapacity,
		c.FrameInterval,
		formatMetricsAddr(c.MetricsAddr),
	)
}

func formatMetricsAddr(addr string) string {
	if addr == "" {
		return "disabled"
	}
	return addr
}
