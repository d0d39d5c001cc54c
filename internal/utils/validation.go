// internal/utils/validation.go
package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// usernamePattern matches the characters SoundCloud permits in permalinks
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

const (
	minUsernameLength = 1
	maxUsernameLength = 25
)

// ExtractUsername pulls the profile username out of a SoundCloud profile URL.
// It returns an error for non-SoundCloud hosts, empty paths, and identifiers
// outside the permitted character set or length.
func ExtractUsername(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", fmt.Errorf("profile URL cannot be empty")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid profile URL: %w", err)
	}

	host := strings.ToLower(u.Hostname())
	if host != "soundcloud.com" && host != "www.soundcloud.com" {
		return "", fmt.Errorf("not a soundcloud.com URL: %q", host)
	}

	var segments []string
	for _, part := range strings.Split(u.Path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	if len(segments) == 0 {
		return "", fmt.Errorf("profile URL has no path: %s", trimmed)
	}

	username := segments[0]
	if err := ValidateUsername(username); err != nil {
		return "", err
	}
	return username, nil
}

// ValidateUsername checks that an identifier is a plausible permalink.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return fmt.Errorf("username %q must be between %d and %d characters",
			username, minUsernameLength, maxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("username %q contains invalid characters", username)
	}
	return nil
}

// ResolveIdentifier accepts either a bare username or a full profile URL and
// returns the username. Bare identifiers are validated the same way.
func ResolveIdentifier(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", fmt.Errorf("identifier cannot be empty")
	}
	if strings.Contains(trimmed, "://") || strings.HasPrefix(trimmed, "www.") {
		if !strings.Contains(trimmed, "://") {
			trimmed = "https://" + trimmed
		}
		return ExtractUsername(trimmed)
	}
	if err := ValidateUsername(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}
