// internal/relay/client.go
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/soundscrape/soundscrape/internal/utils"
)

// DefaultEndpoint is the public pass-through relay. The relay wraps the
// target page in a JSON envelope; see Envelope.
const DefaultEndpoint = "https://api.allorigins.win/get?url="

// DefaultBaseURL is the site whose pages this module scrapes.
const DefaultBaseURL = "https://soundcloud.com"

// RawPage is a fetched page: opaque markup plus the source URL. It is
// ephemeral and should be discarded once extraction has run.
type RawPage struct {
	URL    string
	Markup string
}

// Envelope is the relay's response wrapper.
type Envelope struct {
	Contents string          `json:"contents"`
	Status   *EnvelopeStatus `json:"status,omitempty"`
}

// EnvelopeStatus carries the relay's view of the upstream fetch.
type EnvelopeStatus struct {
	URL      string `json:"url"`
	HTTPCode int    `json:"http_code"`
}

// ClientConfig defines configuration options for the relay client.
type ClientConfig struct {
	Endpoint  string
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	// MaxRequests/Window configure the optional rate-limit helper.
	// MaxRequests <= 0 leaves rate limiting off entirely.
	MaxRequests int
	Window      time.Duration
	Logger      utils.Logger
}

// Client fetches remote pages through the pass-through relay. It issues a
// single request per fetch with no retry or backoff; callers needing
// resilience must wrap it.
type Client struct {
	httpClient *http.Client
	endpoint   string
	baseURL    string
	userAgent  string
	headers    map[string]string
	limiter    *RateLimiter
	logger     utils.Logger
}

// NewClient creates a relay client with the specified configuration.
func NewClient(config ClientConfig) *Client {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"
	}
	if config.Logger == nil {
		config.Logger = utils.NewLogger()
	}

	var limiter *RateLimiter
	if config.MaxRequests > 0 {
		limiter = NewRateLimiter(config.MaxRequests, config.Window)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		endpoint:  config.Endpoint,
		baseURL:   config.BaseURL,
		userAgent: config.UserAgent,
		headers:   config.Headers,
		limiter:   limiter,
		logger:    config.Logger,
	}
}

// BaseURL returns the configured scrape target site.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BuildURL joins a resource path onto the configured base URL.
func (c *Client) BuildURL(path string) string {
	if strings.HasPrefix(path, "/") {
		return c.baseURL + path
	}
	return c.baseURL + "/" + path
}

// FetchPage retrieves the target URL's markup through the relay. It fails
// with *RelayUnavailableError on a non-2xx relay response and with
// ErrEmptyRelayPayload when the envelope carries no contents.
func (c *Client) FetchPage(ctx context.Context, targetURL string) (*RawPage, error) {
	if _, err := url.Parse(targetURL); err != nil {
		return nil, fmt.Errorf("invalid target URL: %w", err)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	relayURL := c.endpoint + url.QueryEscape(targetURL)
	c.logger.Debugf("fetching %s via relay %s", targetURL, relayURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, relayURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setRequestHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RelayUnavailableError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        targetURL,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read relay response: %w", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode relay envelope: %w", err)
	}

	if envelope.Contents == "" {
		return nil, fmt.Errorf("%w (target: %s)", ErrEmptyRelayPayload, targetURL)
	}

	if envelope.Status != nil {
		c.logger.Debugf("relay reports upstream %d for %s (%d bytes)",
			envelope.Status.HTTPCode, envelope.Status.URL, len(envelope.Contents))
	} else {
		c.logger.Debugf("fetched %d bytes for %s", len(envelope.Contents), targetURL)
	}

	return &RawPage{URL: targetURL, Markup: envelope.Contents}, nil
}

// setRequestHeaders applies browser-like defaults plus configured extras.
func (c *Client) setRequestHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/html;q=0.9, */*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
}

// Remaining reports the requests left in the rate-limit window, or -1
// when rate limiting is disabled.
func (c *Client) Remaining() int {
	if c.limiter == nil {
		return -1
	}
	return c.limiter.Remaining()
}
