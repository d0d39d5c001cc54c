// internal/config/types.go
package config

import (
	"fmt"
	"strings"
	"time"
)

// Fetcher backends.
const (
	FetcherRelay   = "relay"
	FetcherBrowser = "browser"
)

// Config is the root configuration.
type Config struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
	// Fetcher selects the page fetch backend: "relay" (default) or
	// "browser".
	Fetcher    string           `yaml:"fetcher"`
	Relay      RelayConfig      `yaml:"relay"`
	Browser    BrowserConfig    `yaml:"browser"`
	Export     ExportConfig     `yaml:"export"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Debug      bool             `yaml:"debug"`
}

// RelayConfig configures the pass-through relay client.
type RelayConfig struct {
	Endpoint  string            `yaml:"endpoint"`
	Timeout   string            `yaml:"timeout"`
	UserAgent string            `yaml:"user_agent"`
	Headers   map[string]string `yaml:"headers"`
	RateLimit RateLimitConfig   `yaml:"rate_limit"`
}

// RateLimitConfig configures the request allowance. MaxRequests 0 takes
// the default allowance; -1 disables rate limiting.
type RateLimitConfig struct {
	MaxRequests int    `yaml:"max_requests"`
	Window      string `yaml:"window"`
}

// BrowserConfig configures the optional headless-browser fetcher.
// Headless is a pointer so an explicit false survives defaulting.
type BrowserConfig struct {
	Headless  *bool  `yaml:"headless"`
	UserAgent string `yaml:"user_agent"`
	Timeout   string `yaml:"timeout"`
	WaitDelay string `yaml:"wait_delay"`
}

// ExportConfig configures artifact generation.
type ExportConfig struct {
	Format    string `yaml:"format"`
	OutputDir string `yaml:"output_dir"`
}

// MonitoringConfig configures the optional metrics endpoint.
type MonitoringConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// applyDefaults fills zero values with production defaults.
func applyDefaults(cfg *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://soundcloud.com"
	}
	if cfg.Fetcher == "" {
		cfg.Fetcher = FetcherRelay
	}
	if cfg.Relay.Endpoint == "" {
		cfg.Relay.Endpoint = "https://api.allorigins.win/get?url="
	}
	if cfg.Relay.Timeout == "" {
		cfg.Relay.Timeout = "30s"
	}
	if cfg.Relay.RateLimit.MaxRequests == 0 {
		cfg.Relay.RateLimit.MaxRequests = 15000
	}
	if cfg.Relay.RateLimit.Window == "" {
		cfg.Relay.RateLimit.Window = "1h"
	}
	if cfg.Browser.Timeout == "" {
		cfg.Browser.Timeout = "45s"
	}
	if cfg.Browser.WaitDelay == "" {
		cfg.Browser.WaitDelay = "2s"
	}
	if cfg.Browser.Headless == nil {
		headless := true
		cfg.Browser.Headless = &headless
	}
	if cfg.Export.Format == "" {
		cfg.Export.Format = "json"
	}
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = "."
	}
	if cfg.Monitoring.Addr == "" {
		cfg.Monitoring.Addr = ":9090"
	}
}

// Validate checks the configuration for coherence.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url cannot be empty")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an http(s) URL: %s", c.BaseURL)
	}

	switch c.Fetcher {
	case FetcherRelay, FetcherBrowser:
	default:
		return fmt.Errorf("fetcher must be %q or %q, got %q", FetcherRelay, FetcherBrowser, c.Fetcher)
	}

	if c.Fetcher == FetcherRelay && c.Relay.Endpoint == "" {
		return fmt.Errorf("relay.endpoint cannot be empty")
	}

	for name, value := range map[string]string{
		"relay.timeout":           c.Relay.Timeout,
		"relay.rate_limit.window": c.Relay.RateLimit.Window,
		"browser.timeout":         c.Browser.Timeout,
		"browser.wait_delay":      c.Browser.WaitDelay,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%s is not a valid duration: %q", name, value)
		}
	}

	if c.Relay.RateLimit.MaxRequests < -1 {
		return fmt.Errorf("relay.rate_limit.max_requests must be -1, 0, or positive")
	}

	return nil
}

// RelayTimeout returns the parsed relay timeout.
func (c *Config) RelayTimeout() time.Duration {
	return parseDurationOr(c.Relay.Timeout, 30*time.Second)
}

// RateLimitWindow returns the parsed rate-limit window.
func (c *Config) RateLimitWindow() time.Duration {
	return parseDurationOr(c.Relay.RateLimit.Window, time.Hour)
}

// BrowserHeadless reports whether the browser fetcher runs headless.
// Unset means headless.
func (c *Config) BrowserHeadless() bool {
	return c.Browser.Headless == nil || *c.Browser.Headless
}

// BrowserTimeout returns the parsed browser navigation timeout.
func (c *Config) BrowserTimeout() time.Duration {
	return parseDurationOr(c.Browser.Timeout, 45*time.Second)
}

// BrowserWaitDelay returns the parsed post-load render delay.
func (c *Config) BrowserWaitDelay() time.Duration {
	return parseDurationOr(c.Browser.WaitDelay, 2*time.Second)
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
