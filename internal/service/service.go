// internal/service/service.go

// Package service orchestrates relay fetch, extraction, and normalization
// for the three profile resources. The profile is the anchor resource and
// fails hard; the tracks and playlists collections fail soft, degrading to
// empty results so a valid profile still renders when its collections
// cannot be parsed. That asymmetry is deliberate. Do not unify it.
package service

import (
	"context"
	"errors"

	"github.com/soundscrape/soundscrape/internal/relay"
)

// Sentinel errors for extraction outcomes.
var (
	// ErrExtractionEmpty indicates neither the hydration data nor the DOM
	// fallback yielded anything usable from the fetched markup.
	ErrExtractionEmpty = errors.New("no usable data extracted from page")

	// ErrProfileNotFound indicates the anchor resource could not be
	// extracted. Terminal for the whole profile load.
	ErrProfileNotFound = errors.New("profile not found")
)

// PageFetcher retrieves a remote page's raw markup. Implemented by the
// relay client and the optional browser fetcher.
type PageFetcher interface {
	FetchPage(ctx context.Context, targetURL string) (*relay.RawPage, error)
}

// ExtractionRecorder observes which extraction path served a fetch and
// how it went. Satisfied by the monitoring metric set.
type ExtractionRecorder interface {
	RecordExtraction(source, outcome string)
}

// Extraction sources and outcomes for recorder labels.
const (
	SourceHydration = "hydration"
	SourceDOM       = "dom"
	SourceMeta      = "meta"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type nopRecorder struct{}

func (nopRecorder) RecordExtraction(string, string) {}
