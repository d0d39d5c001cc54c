// internal/extract/hydration.go

// Package extract turns raw page markup into loosely-typed data: the
// embedded hydration JSON when present, DOM-scanned list items otherwise.
package extract

import (
	"encoding/json"
	"regexp"
)

// hydrationPattern locates the server-rendered bootstrap assignment. The
// non-greedy body stops at the first "];" boundary. This is a bounded text
// search, not a parser: a payload containing "];" inside a string literal
// would truncate early. Known limitation, kept for parity with upstream.
var hydrationPattern = regexp.MustCompile(`(?s)window\.__sc_hydration\s*=\s*(\[.*?\]);`)

// hydrationEntry is one element of the embedded hydration array.
type hydrationEntry struct {
	Hydratable string          `json:"hydratable"`
	Data       json.RawMessage `json:"data"`
}

// ExtractHydration finds the hydration assignment in markup and returns a
// mapping from section name ("user", "tracks", "playlists", ...) to its
// JSON payload. When a section name repeats, the last occurrence in
// document order wins. A missing pattern or malformed JSON yields an empty
// map, never an error: callers treat "no hydration data" as a normal
// outcome requiring the DOM fallback.
func ExtractHydration(markup string) map[string]json.RawMessage {
	sections := make(map[string]json.RawMessage)

	match := hydrationPattern.FindStringSubmatch(markup)
	if match == nil {
		return sections
	}

	var entries []hydrationEntry
	if err := json.Unmarshal([]byte(match[1]), &entries); err != nil {
		return sections
	}

	for _, entry := range entries {
		if entry.Hydratable == "" || len(entry.Data) == 0 || string(entry.Data) == "null" {
			continue
		}
		sections[entry.Hydratable] = entry.Data
	}

	return sections
}

// DecodeSection unmarshals a named hydration section into a generic map.
// Returns nil when the section is absent or not a JSON object.
func DecodeSection(sections map[string]json.RawMessage, name string) map[string]interface{} {
	raw, ok := sections[name]
	if !ok {
		return nil
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	return decoded
}

// DecodeSectionList unmarshals a named hydration section into a slice of
// generic maps. Handles both a bare array and the collection wrapper shape
// {"collection": [...]}. Returns nil when neither applies.
func DecodeSectionList(sections map[string]json.RawMessage, name string) []map[string]interface{} {
	raw, ok := sections[name]
	if !ok {
		return nil
	}

	var list []map[string]interface{}
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	var wrapper struct {
		Collection []map[string]interface{} `json:"collection"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil {
		return wrapper.Collection
	}

	return nil
}
