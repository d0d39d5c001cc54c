// internal/normalize/playlist.go
package normalize

import (
	"github.com/soundscrape/soundscrape/internal/extract"
	"github.com/soundscrape/soundscrape/pkg/types"
)

// Playlist maps a raw playlist object from the hydration data onto the
// stable Playlist record. Tracks may be empty: listing pages summarize
// playlists without their contents.
func Playlist(raw map[string]interface{}) types.Playlist {
	title := stringField(raw, "title")
	if title == "" {
		title = "Untitled Playlist"
	}

	return types.Playlist{
		ID:              intField(raw, "id"),
		Title:           title,
		Author:          UserSummary(nestedObject(raw, "user")),
		DurationSeconds: DurationSeconds(raw["duration"]),
		CreatedAt:       stringField(raw, "created_at"),
		Genre:           stringField(raw, "genre"),
		PermalinkURL:    stringField(raw, "permalink_url"),
		ArtworkURL:      ArtworkURL(stringField(raw, "artwork_url")),
		PlayCount:       intField(raw, "playback_count"),
		LikesCount:      intField(raw, "likes_count", "favoritings_count"),
		CommentCount:    intField(raw, "comment_count"),
		Description:     stringField(raw, "description"),
		TrackCount:      intField(raw, "track_count"),
		Tracks:          TrackList(nestedList(raw, "tracks")),
	}
}

// PlaylistList maps a slice of raw playlist objects, preserving order.
func PlaylistList(raws []map[string]interface{}) []types.Playlist {
	playlists := make([]types.Playlist, 0, len(raws))
	for _, raw := range raws {
		playlists = append(playlists, Playlist(raw))
	}
	return playlists
}

// ListItemPlaylist maps a DOM-recovered list item onto a Playlist record.
func ListItemPlaylist(item extract.RawListItem) types.Playlist {
	title := item.Name
	if title == "" {
		title = "Untitled Playlist"
	}

	var author *types.UserSummary
	if item.Author != "" || item.AuthorURL != "" {
		author = &types.UserSummary{
			DisplayName:  item.Author,
			PermalinkURL: item.AuthorURL,
		}
	}

	return types.Playlist{
		Title:           title,
		Author:          author,
		DurationSeconds: item.DurationSeconds,
		CreatedAt:       item.PublishedAt,
		PermalinkURL:    item.URL,
		Tracks:          []types.Track{},
	}
}
