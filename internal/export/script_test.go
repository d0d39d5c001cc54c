// internal/export/script_test.go
package export

import (
	"strings"
	"testing"

	"github.com/soundscrape/soundscrape/pkg/types"
)

func sampleItems() []types.ExportItem {
	return []types.ExportItem{
		{
			ID:     1,
			Name:   "Night Drive",
			Author: "Other Artist",
			URL:    "https://soundcloud.com/other_artist/night-drive",
			Type:   types.ItemTypeTrack,
			Slug:   "night-drive",
		},
		{
			ID:     2,
			Name:   "Drum & Bass Special",
			Author: "DJ Example",
			URL:    "https://soundcloud.com/dj_example/dnb-special",
			Type:   types.ItemTypeTrack,
			Slug:   "dnb-special",
		},
	}
}

func TestScriptGenerator(t *testing.T) {
	data, err := NewScriptGenerator().Generate(sampleItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	script := string(data)

	for _, want := range []string{
		"@echo off",
		":main_menu",
		":check_ytdlp",
		":install_pip",
		":install_winget",
		":install_exe",
		":download_tracks",
		":show_tracks",
		"echo Total tracks selected: 2",
		`%YTDLP_CMD% "https://soundcloud.com/other_artist/night-drive" --extract-audio --audio-format mp3 --audio-quality 0 --no-playlist`,
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q", want)
		}
	}
}

func TestScriptGeneratorEscapesNames(t *testing.T) {
	data, err := NewScriptGenerator().Generate(sampleItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	script := string(data)

	if !strings.Contains(script, "Drum ^& Bass Special") {
		t.Error("expected ampersand in display name to be caret-escaped")
	}
	if strings.Contains(script, "echo [2/2] Downloading: Drum & Bass Special") {
		t.Error("unescaped display name leaked into the script")
	}
}

func TestScriptGeneratorEmpty(t *testing.T) {
	data, err := NewScriptGenerator().Generate(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "echo Total tracks selected: 0") {
		t.Error("expected zero count in empty script")
	}
}

func TestEscapeCmd(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ampersand", "Drum & Bass", "Drum ^& Bass"},
		{"angle brackets", "a<b>c", "a^<b^>c"},
		{"pipe", "x|y", "x^|y"},
		{"quote doubled", `say "hi"`, `say ""hi""`},
		{"plain", "no specials", "no specials"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeCmd(tt.input); got != tt.expected {
				t.Errorf("EscapeCmd(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
