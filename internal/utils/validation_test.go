// internal/utils/validation_test.go
package utils

import (
	"strings"
	"testing"
)

func TestExtractUsername(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{"plain profile URL", "https://soundcloud.com/dj_example", "dj_example", false},
		{"www host", "https://www.soundcloud.com/dj_example", "dj_example", false},
		{"deep path keeps first segment", "https://soundcloud.com/dj_example/likes", "dj_example", false},
		{"trailing slash", "https://soundcloud.com/dj_example/", "dj_example", false},
		{"wrong host", "https://example.com/dj_example", "", true},
		{"no path", "https://soundcloud.com", "", true},
		{"empty", "", "", true},
		{"invalid characters", "https://soundcloud.com/bad%20user!", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractUsername(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ExtractUsername(%q) = %q, want %q", tt.url, got, tt.expected)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"simple", "dj_example", false},
		{"digits and dashes", "user-123", false},
		{"single character", "a", false},
		{"maximum length", strings.Repeat("a", 25), false},
		{"too long", strings.Repeat("a", 26), true},
		{"empty", "", true},
		{"spaces", "dj example", true},
		{"unicode", "dj_exämple", true},
		{"slash", "dj/example", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr && err == nil {
				t.Errorf("expected error for %q", tt.username)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for %q: %v", tt.username, err)
			}
		})
	}
}

func TestResolveIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"bare username", "dj_example", "dj_example", false},
		{"full URL", "https://soundcloud.com/dj_example", "dj_example", false},
		{"www without scheme", "www.soundcloud.com/dj_example", "dj_example", false},
		{"whitespace trimmed", "  dj_example  ", "dj_example", false},
		{"empty", "", "", true},
		{"invalid bare identifier", "not a user", "", true},
		{"foreign URL", "https://example.com/whoever", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveIdentifier(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ResolveIdentifier(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
