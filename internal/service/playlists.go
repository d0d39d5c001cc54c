// internal/service/playlists.go
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

// PlaylistsService fetches a profile's public playlists at
// <base>/<username>/sets. Like TracksService it fails soft: any internal
// error is logged and downgraded to an empty result.
type PlaylistsService struct {
	fetcher  PageFetcher
	baseURL  string
	logger   utils.Logger
	recorder ExtractionRecorder
}

// NewPlaylistsService creates a playlists service.
func NewPlaylistsService(fetcher PageFetcher, baseURL string, logger utils.Logger) *PlaylistsService {
	if logger == nil {
		logger = utils.NewLogger()
	}
	return &PlaylistsService{
		fetcher:  fetcher,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		logger:   logger,
		recorder: nopRecorder{},
	}
}

// SetRecorder installs an extraction recorder.
func (s *PlaylistsService) SetRecorder(r ExtractionRecorder) {
	if r != nil {
		s.recorder = r
	}
}

// Fetch loads and normalizes the playlists for username. The result is
// never nil.
func (s *PlaylistsService) Fetch(ctx context.Context, username string) []types.Playlist {
	playlists, err := s.fetch(ctx, username)
	if err != nil {
		s.logger.Warnf("failed to fetch playlists for %s, returning empty list: %v", username, err)
		return []types.Playlist{}
	}
	return playlists
}

func (s *PlaylistsService) fetch(ctx context.Context, username string) ([]types.Playlist, error) {
	s.logger.Debugf("fetching playlists for %s", username)

	setsURL := s.baseURL + "/" + username + "/sets"
	page, err := s.fetcher.FetchPage(ctx, setsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to load playlists for %s: %w", username, err)
	}

	sections := extract.ExtractHydration(page.Markup)
	for _, name := range []string{"playlists", "sets"} {
		if raws := extract.DecodeSectionList(sections, name); len(raws) > 0 {
			s.recorder.RecordExtraction(SourceHydration, OutcomeSuccess)
			s.logger.Debugf("extracted %d playlists from hydration section %q", len(raws), name)
			return normalize.PlaylistList(raws), nil
		}
	}
	s.recorder.RecordExtraction(SourceHydration, OutcomeFailure)

	items := extract.ExtractListItems(page.Markup, extract.ProfilePlaylists, s.baseURL)
	playlists := make([]types.Playlist, 0, len(items))
	for _, item := range items {
		playlists = append(playlists, normalize.ListItemPlaylist(item))
	}
	if len(playlists) > 0 {
		s.recorder.RecordExtraction(SourceDOM, OutcomeSuccess)
	} else {
		s.recorder.RecordExtraction(SourceDOM, OutcomeFailure)
	}
	s.logger.Debugf("extracted %d playlists via DOM scan", len(playlists))
	return playlists, nil
}
