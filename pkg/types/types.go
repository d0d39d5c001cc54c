// pkg/types/types.go
package types

import "strings"

// ItemType classifies a scraped list item as a standalone track or a set
type ItemType string

const (
	ItemTypeTrack    ItemType = "track"
	ItemTypePlaylist ItemType = "playlist"
)

// IsValid checks if the item type is a known value
func (t ItemType) IsValid() bool {
	return t == ItemTypeTrack || t == ItemTypePlaylist
}

// UserSummary is the reduced user record embedded in tracks and playlists
type UserSummary struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	DisplayName  string `json:"display_name"`
	AvatarURL    string `json:"avatar_url"`
	PermalinkURL string `json:"permalink_url"`
	Verified     bool   `json:"verified"`
}

// Profile is the normalized representation of a SoundCloud user profile.
// Numeric fields default to 0 and string fields to "" when the source
// page omits them. Username is never empty for a successfully extracted
// profile: it falls back to the originally requested identifier.
type Profile struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	Description    string `json:"description"`
	AvatarURL      string `json:"avatar_url"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
	TrackCount     int64  `json:"track_count"`
	PlaylistCount  int64  `json:"playlist_count"`
	LikesCount     int64  `json:"likes_count"`
	RepostsCount   int64  `json:"reposts_count"`
	PermalinkURL   string `json:"permalink_url"`
	CreatedAt      string `json:"created_at"`
	Verified       bool   `json:"verified"`
	City           string `json:"city"`
	Country        string `json:"country"`
}

// Track is the normalized representation of a single track.
// Streamable defaults to true unless the source explicitly says false;
// absence of the field does not mean false.
type Track struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Author          *UserSummary `json:"author,omitempty"`
	DurationSeconds int64        `json:"duration_seconds"`
	CreatedAt       string       `json:"created_at"`
	Genre           string       `json:"genre"`
	PermalinkURL    string       `json:"permalink_url"`
	ArtworkURL      string       `json:"artwork_url"`
	PlayCount       int64        `json:"play_count"`
	LikesCount      int64        `json:"likes_count"`
	CommentCount    int64        `json:"comment_count"`
	Description     string       `json:"description"`
	Tags            []string     `json:"tags,omitempty"`
	Downloadable    bool         `json:"downloadable"`
	Streamable      bool         `json:"streamable"`
}

// Playlist is the normalized representation of a playlist ("set").
// Tracks may be empty: listing pages summarize playlists without contents.
type Playlist struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Author          *UserSummary `json:"author,omitempty"`
	DurationSeconds int64        `json:"duration_seconds"`
	CreatedAt       string       `json:"created_at"`
	Genre           string       `json:"genre"`
	PermalinkURL    string       `json:"permalink_url"`
	ArtworkURL      string       `json:"artwork_url"`
	PlayCount       int64        `json:"play_count"`
	LikesCount      int64        `json:"likes_count"`
	CommentCount    int64        `json:"comment_count"`
	Description     string       `json:"description"`
	TrackCount      int64        `json:"track_count"`
	Tracks          []Track      `json:"tracks"`
}

// ProfileBundle groups the results of one full profile load. Tracks and
// Playlists are empty slices, never nil, when their fetches degrade.
type ProfileBundle struct {
	Profile   *Profile   `json:"profile"`
	Tracks    []Track    `json:"tracks"`
	Playlists []Playlist `json:"playlists"`
}

// ExportItem is the reduced projection handed to the export generators.
// It is intentionally independent of the full normalized shapes.
type ExportItem struct {
	ID          int      `json:"id"` // 1-based position in the exported list
	Name        string   `json:"name"`
	Author      string   `json:"author"`
	URL         string   `json:"url"`
	AuthorURL   string   `json:"authorUrl"`
	Type        ItemType `json:"type"`
	PublishedAt string   `json:"publishedAt"`
	Slug        string   `json:"slug"`
}

// ExportItemsFromTracks builds the export projection from normalized tracks,
// assigning 1-based positions in input order. Liked sets travel through the
// tracks list; the /sets/ path marker keeps their type accurate.
func ExportItemsFromTracks(tracks []Track) []ExportItem {
	items := make([]ExportItem, 0, len(tracks))
	for i, tr := range tracks {
		itemType := ItemTypeTrack
		if strings.Contains(tr.PermalinkURL, "/sets/") {
			itemType = ItemTypePlaylist
		}
		item := ExportItem{
			ID:          i + 1,
			Name:        tr.Title,
			URL:         tr.PermalinkURL,
			Type:        itemType,
			PublishedAt: tr.CreatedAt,
			Slug:        lastPathSegment(tr.PermalinkURL),
		}
		if tr.Author != nil {
			item.Author = tr.Author.DisplayName
			item.AuthorURL = tr.Author.PermalinkURL
		}
		items = append(items, item)
	}
	return items
}

// ExportItemsFromPlaylists builds the export projection from normalized
// playlists, assigning 1-based positions in input order.
func ExportItemsFromPlaylists(playlists []Playlist) []ExportItem {
	items := make([]ExportItem, 0, len(playlists))
	for i, pl := range playlists {
		item := ExportItem{
			ID:          i + 1,
			Name:        pl.Title,
			URL:         pl.PermalinkURL,
			Type:        ItemTypePlaylist,
			PublishedAt: pl.CreatedAt,
			Slug:        lastPathSegment(pl.PermalinkURL),
		}
		if pl.Author != nil {
			item.Author = pl.Author.DisplayName
			item.AuthorURL = pl.Author.PermalinkURL
		}
		items = append(items, item)
	}
	return items
}

// lastPathSegment returns the final path segment of a URL or path
func lastPathSegment(s string) string {
	if s == "" {
		return ""
	}
	end := len(s)
	for end > 0 && s[end-1] == '/' {
		end--
	}
	start := end
	for start > 0 && s[start-1] != '/' {
		start--
	}
	return s[start:end]
}
