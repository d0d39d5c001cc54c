// internal/service/loader.go
package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/soundscrape/soundscrape/internal/utils"
	"github.com/soundscrape/soundscrape/pkg/types"
)

// Loader runs the three resource fetches for one identifier concurrently
// and joins them. The fetches are independent and self-contained; no
// ordering is guaranteed between them. Only the profile fetch can fail
// the load.
type Loader struct {
	profiles  *ProfileService
	tracks    *TracksService
	playlists *PlaylistsService
	logger    utils.Logger
}

// NewLoader creates a loader over per-resource services sharing a fetcher.
func NewLoader(fetcher PageFetcher, baseURL string, logger utils.Logger) *Loader {
	if logger == nil {
		logger = utils.NewLogger()
	}
	return &Loader{
		profiles:  NewProfileService(fetcher, baseURL, logger),
		tracks:    NewTracksService(fetcher, baseURL, logger),
		playlists: NewPlaylistsService(fetcher, baseURL, logger),
		logger:    logger,
	}
}

// SetRecorder installs an extraction recorder on all three services.
func (l *Loader) SetRecorder(r ExtractionRecorder) {
	l.profiles.SetRecorder(r)
	l.tracks.SetRecorder(r)
	l.playlists.SetRecorder(r)
}

// Profiles exposes the underlying profile service.
func (l *Loader) Profiles() *ProfileService { return l.profiles }

// Tracks exposes the underlying tracks service.
func (l *Loader) Tracks() *TracksService { return l.tracks }

// Playlists exposes the underlying playlists service.
func (l *Loader) Playlists() *PlaylistsService { return l.playlists }

// Load fetches profile, tracks, and playlists for username concurrently.
// A profile failure aborts the whole load; collection failures have
// already degraded to empty slices inside their services.
func (l *Loader) Load(ctx context.Context, username string) (*types.ProfileBundle, error) {
	bundle := &types.ProfileBundle{
		Tracks:    []types.Track{},
		Playlists: []types.Playlist{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := l.profiles.Fetch(gctx, username)
		if err != nil {
			return err
		}
		bundle.Profile = profile
		return nil
	})

	g.Go(func() error {
		bundle.Tracks = l.tracks.Fetch(gctx, username)
		return nil
	})

	g.Go(func() error {
		bundle.Playlists = l.playlists.Fetch(gctx, username)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	l.logger.Infof("loaded profile %s: %d tracks, %d playlists",
		username, len(bundle.Tracks), len(bundle.Playlists))
	return bundle, nil
}
