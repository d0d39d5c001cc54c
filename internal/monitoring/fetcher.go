// internal/monitoring/fetcher.go
package monitoring

import (
	"context"
	"strings"
	"time"

	"github.com/soundscrape/soundscrape/internal/relay"
	"github.com/soundscrape/soundscrape/internal/service"
)

// InstrumentedFetcher wraps a PageFetcher and records request counts and
// durations per resource kind.
type InstrumentedFetcher struct {
	inner   service.PageFetcher
	metrics *Metrics
}

// InstrumentFetcher wraps fetcher with metric recording.
func InstrumentFetcher(fetcher service.PageFetcher, metrics *Metrics) *InstrumentedFetcher {
	return &InstrumentedFetcher{inner: fetcher, metrics: metrics}
}

// FetchPage delegates to the wrapped fetcher and records the outcome.
func (f *InstrumentedFetcher) FetchPage(ctx context.Context, targetURL string) (*relay.RawPage, error) {
	start := time.Now()
	page, err := f.inner.FetchPage(ctx, targetURL)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	f.metrics.RecordRelayRequest(resourceForURL(targetURL), outcome, time.Since(start))

	return page, err
}

// resourceForURL classifies a target URL by its trailing path segment.
func resourceForURL(targetURL string) string {
	trimmed := strings.TrimSuffix(targetURL, "/")
	switch {
	case strings.HasSuffix(trimmed, "/likes"):
		return "tracks"
	case strings.HasSuffix(trimmed, "/sets"):
		return "playlists"
	default:
		return "profile"
	}
}
