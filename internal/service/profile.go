// internal/service/profile.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/soundscrape/soundscrape/internal/extract"
	"github.com/soundscrape/soundscrape/internal/normalize"
	"github.com/soundscrape/soundscrape/internal/utils"
	"github.com/soundscrape/soundscrape/pkg/types"
)

// ProfileService fetches and extracts the anchor resource: the profile
// page at <base>/<username>. Errors propagate to the caller.
type ProfileService struct {
	fetcher  PageFetcher
	baseURL  string
	logger   utils.Logger
	recorder ExtractionRecorder
}

// NewProfileService creates a profile service.
func NewProfileService(fetcher PageFetcher, baseURL string, logger utils.Logger) *ProfileService {
	if logger == nil {
		logger = utils.NewLogger()
	}
	return &ProfileService{
		fetcher:  fetcher,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		logger:   logger,
		recorder: nopRecorder{},
	}
}

// SetRecorder installs an extraction recorder.
func (s *ProfileService) SetRecorder(r ExtractionRecorder) {
	if r != nil {
		s.recorder = r
	}
}

// Fetch loads and normalizes the profile for username. The hydration
// "user" section is preferred; page meta tags are the fallback. When
// neither yields a usable profile the load fails with ErrProfileNotFound.
func (s *ProfileService) Fetch(ctx context.Context, username string) (*types.Profile, error) {
	s.logger.Debugf("fetching profile for %s", username)

	profileURL := s.baseURL + "/" + username
	page, err := s.fetcher.FetchPage(ctx, profileURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for %s: %w", username, err)
	}

	fallbacks := normalize.ProfileFallbacks{
		Username: username,
		BaseURL:  s.baseURL,
	}

	sections := extract.ExtractHydration(page.Markup)
	if user := extract.DecodeSection(sections, "user"); user != nil {
		s.recorder.RecordExtraction(SourceHydration, OutcomeSuccess)
		profile := normalize.Profile(user, fallbacks)
		s.logger.Debugf("profile %s extracted from hydration data", profile.Username)
		return profile, nil
	}
	s.recorder.RecordExtraction(SourceHydration, OutcomeFailure)

	meta := extract.ExtractMetaTags(page.Markup)
	if profile := normalize.ProfileFromMeta(meta, fallbacks); profile != nil {
		s.recorder.RecordExtraction(SourceMeta, OutcomeSuccess)
		s.logger.Debugf("profile %s recovered from meta tags", profile.Username)
		return profile, nil
	}
	s.recorder.RecordExtraction(SourceMeta, OutcomeFailure)

	return nil, fmt.Errorf("%w: %s: %w", ErrProfileNotFound, username, ErrExtractionEmpty)
}
