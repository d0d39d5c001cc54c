// internal/normalize/profile.go
package normalize

import (
	"strings"

	"github.com/soundscrape/soundscrape/pkg/types"
)

// ProfileFallbacks carries the values substituted for fields the source
// page omits.
type ProfileFallbacks struct {
	// Username is the originally requested identifier. A normalized
	// profile's Username is never empty: this fills the gap when the
	// source data carries no permalink.
	Username string
	// BaseURL reconstructs the permalink URL when the source omits it.
	BaseURL string
}

// Profile maps a raw profile object (the hydration "user" section or a
// DOM-recovered equivalent) onto the stable Profile record.
func Profile(raw map[string]interface{}, fallbacks ProfileFallbacks) *types.Profile {
	username := stringField(raw, "username", "permalink")
	if username == "" {
		username = fallbacks.Username
	}

	permalinkURL := stringField(raw, "permalink_url")
	if permalinkURL == "" && fallbacks.BaseURL != "" {
		permalinkURL = strings.TrimSuffix(fallbacks.BaseURL, "/") + "/" + username
	}

	displayName := stringField(raw, "full_name", "username")
	if displayName == "" {
		displayName = fallbacks.Username
	}

	return &types.Profile{
		ID:             intField(raw, "id"),
		Username:       username,
		DisplayName:    displayName,
		Description:    stringField(raw, "description"),
		AvatarURL:      stringField(raw, "avatar_url"),
		FollowersCount: intField(raw, "followers_count"),
		FollowingCount: intField(raw, "followings_count"),
		TrackCount:     intField(raw, "track_count"),
		PlaylistCount:  intField(raw, "playlist_count"),
		LikesCount:     intField(raw, "likes_count", "public_favorites_count"),
		RepostsCount:   intField(raw, "reposts_count"),
		PermalinkURL:   permalinkURL,
		CreatedAt:      stringField(raw, "created_at"),
		Verified:       boolField(raw, "verified"),
		City:           stringField(raw, "city"),
		Country:        stringField(raw, "country"),
	}
}

// ProfileFromMeta recovers a minimal profile from page meta tags when no
// hydration user section exists. Returns nil when the tags carry nothing
// identifying a user.
func ProfileFromMeta(meta map[string]string, fallbacks ProfileFallbacks) *types.Profile {
	permalinkURL := firstNonEmpty(meta["og:url"], meta["twitter:url"])
	displayName := firstNonEmpty(meta["og:title"], meta["twitter:title"])
	avatar := firstNonEmpty(meta["og:image"], meta["twitter:image"])
	if permalinkURL == "" && displayName == "" && avatar == "" {
		return nil
	}

	if displayName == "" {
		displayName = fallbacks.Username
	}
	if permalinkURL == "" && fallbacks.BaseURL != "" {
		permalinkURL = strings.TrimSuffix(fallbacks.BaseURL, "/") + "/" + fallbacks.Username
	}

	return &types.Profile{
		Username:     fallbacks.Username,
		DisplayName:  displayName,
		Description:  meta["og:description"],
		AvatarURL:    avatar,
		PermalinkURL: permalinkURL,
	}
}

// UserSummary maps a raw nested user object onto the reduced summary
// embedded in tracks and playlists. Returns nil for a nil input.
func UserSummary(raw map[string]interface{}) *types.UserSummary {
	if raw == nil {
		return nil
	}
	return &types.UserSummary{
		ID:           intField(raw, "id"),
		Username:     stringField(raw, "username", "permalink"),
		DisplayName:  stringField(raw, "full_name", "username"),
		AvatarURL:    ArtworkURL(stringField(raw, "avatar_url")),
		PermalinkURL: stringField(raw, "permalink_url"),
		Verified:     boolField(raw, "verified"),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
