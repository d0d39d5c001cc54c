// internal/browser/browser.go

// Package browser provides an optional chromedp-backed page fetcher for
// pages the relay cannot serve usefully, e.g. when the target only
// renders its listings client-side. It satisfies the same PageFetcher
// contract as the relay client.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/soundscrape/soundscrape/internal/relay"
	"github.com/soundscrape/soundscrape/internal/utils"
)

// Config defines configuration options for the browser fetcher.
type Config struct {
	Headless  bool
	UserAgent string
	Timeout   time.Duration
	// WaitDelay pauses after the page is ready, giving client-side
	// rendering a chance to fill the listings.
	WaitDelay time.Duration
	Logger    utils.Logger
}

// DefaultConfig returns a headless configuration with a 45s timeout.
func DefaultConfig() Config {
	return Config{
		Headless:  true,
		Timeout:   45 * time.Second,
		WaitDelay: 2 * time.Second,
	}
}

// Client fetches pages by driving a headless Chrome instance. One
// allocator is shared across fetches; each fetch gets its own tab.
type Client struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	config      Config
	logger      utils.Logger
}

// NewClient creates a browser fetcher. Close must be called to release
// the Chrome allocator.
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 45 * time.Second
	}
	if config.Logger == nil {
		config.Logger = utils.NewLogger()
	}

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.DisableGPU,
		chromedp.NoSandbox, // required in container environments
	}
	if config.Headless {
		opts = append(opts, chromedp.Headless)
	}
	if config.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(config.UserAgent))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Client{
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		config:      config,
		logger:      config.Logger,
	}
}

// FetchPage navigates to the target URL and returns the rendered markup.
func (c *Client) FetchPage(ctx context.Context, targetURL string) (*relay.RawPage, error) {
	c.logger.Debugf("fetching %s via headless browser", targetURL)

	tabCtx, cancelTab := chromedp.NewContext(c.allocCtx)
	defer cancelTab()

	timeout := c.config.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, timeout)
	defer cancelTimeout()

	tasks := []chromedp.Action{
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body"),
	}
	if c.config.WaitDelay > 0 {
		tasks = append(tasks, chromedp.Sleep(c.config.WaitDelay))
	}

	var markup string
	tasks = append(tasks, chromedp.OuterHTML("html", &markup))

	if err := chromedp.Run(tabCtx, tasks...); err != nil {
		return nil, fmt.Errorf("browser fetch of %s failed: %w", targetURL, err)
	}
	if markup == "" {
		return nil, fmt.Errorf("%w (target: %s)", relay.ErrEmptyRelayPayload, targetURL)
	}

	c.logger.Debugf("rendered %d bytes for %s", len(markup), targetURL)
	return &relay.RawPage{URL: targetURL, Markup: markup}, nil
}

// Close releases the Chrome allocator.
func (c *Client) Close() {
	c.allocCancel()
}
