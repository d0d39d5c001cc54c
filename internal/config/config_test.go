// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromBytesDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`name: test`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.BaseURL != "https://soundcloud.com" {
		t.Errorf("unexpected base URL default: %q", cfg.BaseURL)
	}
	if cfg.Fetcher != FetcherRelay {
		t.Errorf("expected relay fetcher default, got %q", cfg.Fetcher)
	}
	if cfg.Relay.Endpoint != "https://api.allorigins.win/get?url=" {
		t.Errorf("unexpected relay endpoint default: %q", cfg.Relay.Endpoint)
	}
	if cfg.RelayTimeout() != 30*time.Second {
		t.Errorf("unexpected relay timeout default: %v", cfg.RelayTimeout())
	}
	if cfg.RateLimitWindow() != time.Hour {
		t.Errorf("unexpected rate limit window default: %v", cfg.RateLimitWindow())
	}
	if cfg.Relay.RateLimit.MaxRequests != 15000 {
		t.Errorf("unexpected rate limit default: %d", cfg.Relay.RateLimit.MaxRequests)
	}
	if !cfg.BrowserHeadless() {
		t.Error("expected headless browser default")
	}
	if cfg.Export.Format != "json" || cfg.Export.OutputDir != "." {
		t.Errorf("unexpected export defaults: %+v", cfg.Export)
	}
	if cfg.Monitoring.Addr != ":9090" {
		t.Errorf("unexpected monitoring address default: %q", cfg.Monitoring.Addr)
	}
}

func TestLoadFromBytesOverrides(t *testing.T) {
	yaml := `
base_url: https://example.com
fetcher: browser
browser:
  headless: false
  timeout: 90s
relay:
  timeout: 10s
  rate_limit:
    max_requests: 500
    window: 30m
export:
  format: csv
  output_dir: /tmp/exports
debug: true
`
	cfg, err := LoadFromBytes([]byte(yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Fetcher != FetcherBrowser {
		t.Errorf("expected browser fetcher, got %q", cfg.Fetcher)
	}
	if cfg.BrowserHeadless() {
		t.Error("expected explicit headless false to survive defaulting")
	}
	if cfg.BrowserTimeout() != 90*time.Second {
		t.Errorf("unexpected browser timeout: %v", cfg.BrowserTimeout())
	}
	if cfg.RelayTimeout() != 10*time.Second {
		t.Errorf("unexpected relay timeout: %v", cfg.RelayTimeout())
	}
	if cfg.Relay.RateLimit.MaxRequests != 500 {
		t.Errorf("unexpected max requests: %d", cfg.Relay.RateLimit.MaxRequests)
	}
	if cfg.RateLimitWindow() != 30*time.Minute {
		t.Errorf("unexpected window: %v", cfg.RateLimitWindow())
	}
	if !cfg.Debug {
		t.Error("expected debug true")
	}
}

func TestLoadFromBytesEnvExpansion(t *testing.T) {
	t.Setenv("TEST_BASE_URL", "https://staging.example.com")

	cfg, err := LoadFromBytes([]byte("base_url: ${TEST_BASE_URL}\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://staging.example.com" {
		t.Errorf("expected env var to expand, got %q", cfg.BaseURL)
	}
}

func TestLoadFromBytesInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"broken yaml", "base_url: [unclosed"},
		{"bad scheme", "base_url: ftp://example.com"},
		{"unknown fetcher", "fetcher: carrier_pigeon"},
		{"bad duration", "relay:\n  timeout: fast"},
		{"negative max requests", "relay:\n  rate_limit:\n    max_requests: -2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFromBytes([]byte(tt.yaml)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("name: from_file\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "from_file" {
		t.Errorf("unexpected name: %q", cfg.Name)
	}

	if _, err := LoadFromFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadFromFile(""); err == nil {
		t.Error("expected error for empty filename")
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default configuration must validate: %v", err)
	}
	if err := GenerateTemplate().Validate(); err != nil {
		t.Errorf("template configuration must validate: %v", err)
	}
}
