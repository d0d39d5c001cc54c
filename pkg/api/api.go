// pkg/api/api.go

// Package api is the public entry point: a Client that wires the
// configured fetch backend to the three resource services and the export
// generators.
package api

import (
	"context"
	"fmt"

	"github.com/soundscrape/soundscrape/internal/browser"
	"github.com/soundscrape/soundscrape/internal/config"
	"github.com/soundscrape/soundscrape/internal/export"
	"github.com/soundscrape/soundscrape/internal/monitoring"
	"github.com/soundscrape/soundscrape/internal/relay"
	"github.com/soundscrape/soundscrape/internal/service"
	"github.com/soundscrape/soundscrape/internal/utils"
	"github.com/soundscrape/soundscrape/pkg/types"
)

// Config is re-exported for callers building clients programmatically.
type Config = config.Config

// Client provides the high-level profile loading and export operations.
type Client struct {
	cfg     *config.Config
	loader  *service.Loader
	exports *export.Manager
	browser *browser.Client
	metrics *monitoring.Metrics
	logger  utils.Logger
}

// NewClient creates a client from a configuration. A nil configuration
// gets the defaults.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := utils.NewDebugLogger(cfg.Debug)

	var fetcher service.PageFetcher
	var browserClient *browser.Client

	switch cfg.Fetcher {
	case config.FetcherBrowser:
		browserClient = browser.NewClient(browser.Config{
			Headless:  cfg.BrowserHeadless(),
			UserAgent: cfg.Browser.UserAgent,
			Timeout:   cfg.BrowserTimeout(),
			WaitDelay: cfg.BrowserWaitDelay(),
			Logger:    logger,
		})
		fetcher = browserClient
	default:
		fetcher = relay.NewClient(relay.ClientConfig{
			Endpoint:    cfg.Relay.Endpoint,
			BaseURL:     cfg.BaseURL,
			Timeout:     cfg.RelayTimeout(),
			UserAgent:   cfg.Relay.UserAgent,
			Headers:     cfg.Relay.Headers,
			MaxRequests: cfg.Relay.RateLimit.MaxRequests,
			Window:      cfg.RateLimitWindow(),
			Logger:      logger,
		})
	}

	metrics := monitoring.NewMetrics()
	fetcher = monitoring.InstrumentFetcher(fetcher, metrics)

	loader := service.NewLoader(fetcher, cfg.BaseURL, logger)
	loader.SetRecorder(metrics)

	return &Client{
		cfg:     cfg,
		loader:  loader,
		exports: export.NewManager(cfg.Export.OutputDir, logger),
		browser: browserClient,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Metrics returns the client's metric set.
func (c *Client) Metrics() *monitoring.Metrics { return c.metrics }

// ServeMonitoring blocks serving /healthz and /metrics on addr.
func (c *Client) ServeMonitoring(addr string) error {
	return monitoring.NewServer(c.metrics, c.logger).ListenAndServe(addr)
}

// LoadProfile fetches profile, tracks, and playlists for a username or a
// full profile URL. The profile is the anchor resource: its failure
// aborts the load. Collection failures degrade to empty slices.
func (c *Client) LoadProfile(ctx context.Context, identifier string) (*types.ProfileBundle, error) {
	username, err := utils.ResolveIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	bundle, err := c.loader.Load(ctx, username)
	if err != nil {
		c.metrics.RecordProfileFailure()
		return nil, err
	}
	c.metrics.RecordItems("tracks", len(bundle.Tracks))
	c.metrics.RecordItems("playlists", len(bundle.Playlists))
	return bundle, nil
}

// FetchProfile fetches only the anchor resource.
func (c *Client) FetchProfile(ctx context.Context, identifier string) (*types.Profile, error) {
	username, err := utils.ResolveIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	return c.loader.Profiles().Fetch(ctx, username)
}

// FetchTracks fetches only the liked tracks; never fails.
func (c *Client) FetchTracks(ctx context.Context, identifier string) ([]types.Track, error) {
	username, err := utils.ResolveIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	return c.loader.Tracks().Fetch(ctx, username), nil
}

// FetchPlaylists fetches only the playlists; never fails.
func (c *Client) FetchPlaylists(ctx context.Context, identifier string) ([]types.Playlist, error) {
	username, err := utils.ResolveIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	return c.loader.Playlists().Fetch(ctx, username), nil
}

// Export generates the configured artifact for the items and writes it
// under the configured output directory. Returns the written path.
func (c *Client) Export(format export.Format, name string, items []types.ExportItem) (string, error) {
	path, err := c.exports.Write(format, name, items)
	if err == nil {
		c.metrics.RecordExport(string(format))
	}
	return path, err
}

// Generate produces artifact bytes without writing them.
func (c *Client) Generate(format export.Format, items []types.ExportItem) ([]byte, error) {
	return c.exports.Generate(format, items)
}

// Close releases backend resources (the browser allocator, when used).
func (c *Client) Close() {
	if c.browser != nil {
		c.browser.Close()
	}
}
