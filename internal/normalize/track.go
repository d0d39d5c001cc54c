// internal/normalize/track.go
package normalize

import (
	"github.com/soundscrape/soundscrape/internal/extract"
	"github.com/soundscrape/soundscrape/pkg/types"
)

// Track maps a raw track object from the hydration data onto the stable
// Track record.
func Track(raw map[string]interface{}) types.Track {
	title := stringField(raw, "title")
	if title == "" {
		title = "Untitled"
	}

	return types.Track{
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
		Tags:            ParseTags(stringField(raw, "tag_list")),
		Downloadable:    boolField(raw, "downloadable"),
		Streamable:      boolFieldDefaultTrue(raw, "streamable"),
	}
}

// TrackList maps a slice of raw track objects, preserving order.
func TrackList(raws []map[string]interface{}) []types.Track {
	tracks := make([]types.Track, 0, len(raws))
	for _, raw := range raws {
		tracks = append(tracks, Track(raw))
	}
	return tracks
}

// ListItemTrack maps a DOM-recovered list item onto a Track record. The
// DOM scan yields far fewer facts than hydration; the rest stay at their
// zero defaults, except streamable which defaults true.
func ListItemTrack(item extract.RawListItem) types.Track {
	title := item.Name
	if title == "" {
		title = "Untitled"
	}

	var author *types.UserSummary
	if item.Author != "" || item.AuthorURL != "" {
		author = &types.UserSummary{
			DisplayName:  item.Author,
			PermalinkURL: item.AuthorURL,
		}
	}

	return types.Track{
		Title:        title,
		Author:       author,
		CreatedAt:    item.PublishedAt,
		PermalinkURL: item.URL,
		Streamable:   true,
	}
}
