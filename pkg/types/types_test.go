// pkg/types/types_test.go
package types

import "testing"

func TestExportItemsFromTracks(t *testing.T) {
	tracks := []Track{
		{
			Title:        "Night Drive",
			PermalinkURL: "https://soundcloud.com/other_artist/night-drive",
			CreatedAt:    "2024-01-15T08:30:00Z",
			Author: &UserSummary{
				DisplayName:  "Other Artist",
				PermalinkURL: "https://soundcloud.com/other_artist",
			},
		},
		{
			Title:        "Liked Set",
			PermalinkURL: "https://soundcloud.com/someone/sets/liked-set",
		},
	}

	items := ExportItemsFromTracks(tracks)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.ID != 1 {
		t.Errorf("expected 1-based position, got %d", first.ID)
	}
	if first.Type != ItemTypeTrack {
		t.Errorf("expected track type, got %q", first.Type)
	}
	if first.Author != "Other Artist" || first.AuthorURL != "https://soundcloud.com/other_artist" {
		t.Errorf("unexpected author fields: %+v", first)
	}
	if first.Slug != "night-drive" {
		t.Errorf("expected slug night-drive, got %q", first.Slug)
	}
	if first.PublishedAt != "2024-01-15T08:30:00Z" {
		t.Errorf("unexpected published date: %q", first.PublishedAt)
	}

	second := items[1]
	if second.ID != 2 {
		t.Errorf("expected position 2, got %d", second.ID)
	}
	if second.Type != ItemTypePlaylist {
		t.Errorf("expected /sets/ link to classify as playlist, got %q", second.Type)
	}
	if second.Author != "" {
		t.Errorf("expected empty author for nil summary, got %q", second.Author)
	}
}

func TestExportItemsFromPlaylists(t *testing.T) {
	playlists := []Playlist{
		{
			Title:        "Summer Mix",
			PermalinkURL: "https://soundcloud.com/dj_example/sets/summer-mix",
			Author:       &UserSummary{DisplayName: "DJ Example"},
		},
	}

	items := ExportItemsFromPlaylists(playlists)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Type != ItemTypePlaylist {
		t.Errorf("expected playlist type, got %q", items[0].Type)
	}
	if items[0].Slug != "summer-mix" {
		t.Errorf("expected slug summer-mix, got %q", items[0].Slug)
	}
}

func TestExportItemsEmpty(t *testing.T) {
	if items := ExportItemsFromTracks(nil); items == nil || len(items) != 0 {
		t.Errorf("expected empty slice for nil tracks, got %v", items)
	}
	if items := ExportItemsFromPlaylists(nil); items == nil || len(items) != 0 {
		t.Errorf("expected empty slice for nil playlists, got %v", items)
	}
}

func TestLastPathSegment(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://soundcloud.com/artist/sets/my-mix", "my-mix"},
		{"https://soundcloud.com/artist/track/", "track"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := lastPathSegment(tt.input); got != tt.expected {
			t.Errorf("lastPathSegment(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestItemTypeIsValid(t *testing.T) {
	if !ItemTypeTrack.IsValid() || !ItemTypePlaylist.IsValid() {
		t.Error("expected known item types to be valid")
	}
	if ItemType("album").IsValid() {
		t.Error("expected unknown item type to be invalid")
	}
}
