// internal/service/tracks.go
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

// TracksService fetches a profile's public likes feed at
// <base>/<username>/likes. It never propagates an error: failures are
// logged and downgraded to an empty result so a valid profile still
// renders when its likes markup cannot be parsed.
type TracksService struct {
	fetcher  PageFetcher
	baseURL  string
	logger   utils.Logger
	recorder ExtractionRecorder
}

// NewTracksService creates a tracks service.
func NewTracksService(fetcher PageFetcher, baseURL string, logger utils.Logger) *TracksService {
	if logger == nil {
		logger = utils.NewLogger()
	}
	return &TracksService{
		fetcher:  fetcher,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		logger:   logger,
		recorder: nopRecorder{},
	}
}

// SetRecorder installs an extraction recorder.
func (s *TracksService) SetRecorder(r ExtractionRecorder) {
	if r != nil {
		s.recorder = r
	}
}

// Fetch loads and normalizes the liked tracks for username. The result is
// never nil. An empty feed and a failed fetch both yield an empty slice;
// only the log distinguishes them.
func (s *TracksService) Fetch(ctx context.Context, username string) []types.Track {
	tracks, err := s.fetch(ctx, username)
	if err != nil {
		s.logger.Warnf("failed to fetch tracks for %s, returning empty list: %v", username, err)
		return []types.Track{}
	}
	return tracks
}

func (s *TracksService) fetch(ctx context.Context, username string) ([]types.Track, error) {
	s.logger.Debugf("fetching likes for %s", username)

	likesURL := s.baseURL + "/" + username + "/likes"
	page, err := s.fetcher.FetchPage(ctx, likesURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load likes for %s: %w", username, err)
	}

	sections := extract.ExtractHydration(page.Markup)
	for _, name := range []string{"tracks", "stream"} {
		if raws := extract.DecodeSectionList(sections, name); len(raws) > 0 {
			s.recorder.RecordExtraction(SourceHydration, OutcomeSuccess)
			s.logger.Debugf("extracted %d tracks from hydration section %q", len(raws), name)
			return normalize.TrackList(raws), nil
		}
	}
	s.recorder.RecordExtraction(SourceHydration, OutcomeFailure)

	items := extract.ExtractListItems(page.Markup, extract.ProfileLikes, s.baseURL)
	tracks := make([]types.Track, 0, len(items))
	for _, item := range items {
		tracks = append(tracks, normalize.ListItemTrack(item))
	}
	if len(tracks) > 0 {
		s.recorder.RecordExtraction(SourceDOM, OutcomeSuccess)
	} else {
		s.recorder.RecordExtraction(SourceDOM, OutcomeFailure)
	}
	s.logger.Debugf("extracted %d liked items via DOM scan", len(tracks))
	return tracks, nil
}
