// internal/export/sanitize.go
package export

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticStripper decomposes characters and removes combining marks, so
// accented display names reduce to their ASCII base letters.
var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// unsafeFilenameRunes are replaced when building artifact filenames.
const unsafeFilenameRunes = `/\:*?"<>|`

// SanitizeFilename turns a display name into a safe artifact filename
// fragment: diacritics stripped, filesystem metacharacters replaced with
// underscores, surrounding whitespace trimmed.
func SanitizeFilename(name string) string {
	stripped, _, err := transform.String(diacriticStripper, name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		switch {
		case strings.ContainsRune(unsafeFilenameRunes, r):
			b.WriteRune('_')
		case unicode.IsControl(r):
			// drop
		default:
			b.WriteRune(r)
		}
	}

	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" {
		return "export"
	}
	return cleaned
}
