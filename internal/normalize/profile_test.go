// internal/normalize/profile_test.go
package normalize

import "testing"

func TestProfile(t *testing.T) {
	raw := map[string]interface{}{
		"id":               float64(12345),
		"permalink":        "dj_example",
		"full_name":        "DJ Example",
		"permalink_url":    "https://soundcloud.com/dj_example",
		"avatar_url":       "https://i1.sndcdn.com/avatars-xyz-large.jpg",
		"followers_count":  float64(1500),
		"followings_count": float64(300),
		"track_count":      float64(42),
		"playlist_count":   float64(7),
		"likes_count":      float64(99),
		"verified":         true,
		"city":             "Berlin",
		"country":          "Germany",
	}

	profile := Profile(raw, ProfileFallbacks{Username: "requested", BaseURL: "https://soundcloud.com"})

	if profile.ID != 12345 {
		t.Errorf("expected ID 12345, got %d", profile.ID)
	}
	if profile.Username != "dj_example" {
		t.Errorf("expected username from permalink, got %q", profile.Username)
	}
	if profile.DisplayName != "DJ Example" {
		t.Errorf("expected display name DJ Example, got %q", profile.DisplayName)
	}
	if profile.FollowersCount != 1500 || profile.FollowingCount != 300 {
		t.Errorf("unexpected follower counts: %d/%d", profile.FollowersCount, profile.FollowingCount)
	}
	if profile.LikesCount != 99 {
		t.Errorf("expected likes count 99, got %d", profile.LikesCount)
	}
	if !profile.Verified {
		t.Error("expected verified profile")
	}
	if profile.City != "Berlin" || profile.Country != "Germany" {
		t.Errorf("unexpected location: %q %q", profile.City, profile.Country)
	}
}

func TestProfileFallbacks(t *testing.T) {
	profile := Profile(map[string]interface{}{}, ProfileFallbacks{
		Username: "requested_user",
		BaseURL:  "https://soundcloud.com",
	})

	if profile.Username != "requested_user" {
		t.Errorf("expected username fallback to requested identifier, got %q", profile.Username)
	}
	if profile.DisplayName != "requested_user" {
		t.Errorf("expected display name fallback, got %q", profile.DisplayName)
	}
	if profile.PermalinkURL != "https://soundcloud.com/requested_user" {
		t.Errorf("expected reconstructed permalink URL, got %q", profile.PermalinkURL)
	}
	if profile.FollowersCount != 0 || profile.TrackCount != 0 {
		t.Errorf("expected zero defaults for missing counts")
	}
}

func TestProfileUsernameChain(t *testing.T) {
	raw := map[string]interface{}{
		"username": "dj_example",
	}

	profile := Profile(raw, ProfileFallbacks{Username: "requested"})
	if profile.Username != "dj_example" {
		t.Errorf("expected username field before the fallback, got %q", profile.Username)
	}

	raw = map[string]interface{}{
		"username":  "dj_example",
		"permalink": "dj_example_permalink",
	}
	profile = Profile(raw, ProfileFallbacks{Username: "requested"})
	if profile.Username != "dj_example" {
		t.Errorf("expected username to win over permalink, got %q", profile.Username)
	}
}

func TestProfileDisplayNameChain(t *testing.T) {
	raw := map[string]interface{}{
		"permalink": "dj_example",
		"username":  "dj_example_alias",
	}

	profile := Profile(raw, ProfileFallbacks{Username: "requested"})
	if profile.DisplayName != "dj_example_alias" {
		t.Errorf("expected username field before fallback, got %q", profile.DisplayName)
	}
}

func TestProfileLikesCountLegacyField(t *testing.T) {
	raw := map[string]interface{}{
		"permalink":              "dj_example",
		"public_favorites_count": float64(55),
	}

	profile := Profile(raw, ProfileFallbacks{Username: "dj_example"})
	if profile.LikesCount != 55 {
		t.Errorf("expected legacy favorites count 55, got %d", profile.LikesCount)
	}
}

func TestProfileFromMeta(t *testing.T) {
	meta := map[string]string{
		"og:title":       "DJ Example",
		"og:url":         "https://soundcloud.com/dj_example",
		"og:image":       "https://cdn.example.com/avatar.jpg",
		"og:description": "Berlin based producer",
	}

	profile := ProfileFromMeta(meta, ProfileFallbacks{Username: "dj_example"})
	if profile == nil {
		t.Fatal("expected profile from meta tags")
	}
	if profile.Username != "dj_example" {
		t.Errorf("expected username from fallback, got %q", profile.Username)
	}
	if profile.DisplayName != "DJ Example" {
		t.Errorf("expected display name from og:title, got %q", profile.DisplayName)
	}
	if profile.Description != "Berlin based producer" {
		t.Errorf("unexpected description: %q", profile.Description)
	}
}

func TestProfileFromMetaEmpty(t *testing.T) {
	if profile := ProfileFromMeta(map[string]string{}, ProfileFallbacks{Username: "u"}); profile != nil {
		t.Errorf("expected nil for empty meta tags, got %+v", profile)
	}
}

func TestUserSummary(t *testing.T) {
	raw := map[string]interface{}{
		"id":         float64(99),
		"username":   "other_artist",
		"full_name":  "Other Artist",
		"avatar_url": "https://i1.sndcdn.com/avatars-abc-large.jpg",
	}

	summary := UserSummary(raw)
	if summary == nil {
		t.Fatal("expected summary")
	}
	if summary.DisplayName != "Other Artist" {
		t.Errorf("unexpected display name: %q", summary.DisplayName)
	}
	if summary.AvatarURL != "https://i1.sndcdn.com/avatars-abc-t500x500.jpg" {
		t.Errorf("expected high resolution avatar, got %q", summary.AvatarURL)
	}

	if got := UserSummary(nil); got != nil {
		t.Errorf("expected nil summary for nil input, got %+v", got)
	}
}
