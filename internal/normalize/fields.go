// internal/normalize/fields.go

// Package normalize maps the extractors' loosely-typed raw objects onto
// the stable record shapes in pkg/types. Field selection is
// first-non-empty-wins across the known alternate source field names;
// different page-layout generations populate different subsets, so the
// chains are reproduced exactly rather than simplified.
package normalize

import "strings"

// stringField returns the first non-empty string among the named keys.
func stringField(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// intField returns the first non-zero numeric value among the named keys.
// JSON decoding yields float64; raw maps built in code may carry ints.
// 0 doubles as the "absent" sentinel, indistinguishable from a genuine
// zero count. Accepted ambiguity.
func intField(raw map[string]interface{}, keys ...string) int64 {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if n := toInt64(v); n != 0 {
			return n
		}
	}
	return 0
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

// boolField returns the named key as a bool, or false when absent or not
// a bool.
func boolField(raw map[string]interface{}, key string) bool {
	if v, ok := raw[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// boolFieldDefaultTrue returns true unless the key is explicitly false.
// Absence does not mean false.
func boolFieldDefaultTrue(raw map[string]interface{}, key string) bool {
	if v, ok := raw[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return true
}

// nestedObject returns the named key as a map, or nil.
func nestedObject(raw map[string]interface{}, key string) map[string]interface{} {
	if v, ok := raw[key]; ok {
		if m, ok := v.(map[string]interface{}); ok {
			return m
		}
	}
	return nil
}

// nestedList returns the named key as a slice of maps, or nil. Elements
// that are not objects are dropped.
func nestedList(raw map[string]interface{}, key string) []map[string]interface{} {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(list))
	for _, elem := range list {
		if m, ok := elem.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// ArtworkURL rewrites an artwork or avatar URL to request the higher
// resolution asset. The substring transform follows the upstream CDN's
// versioned naming convention and must stay literal.
func ArtworkURL(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.Replace(raw, "-large.jpg", "-t500x500.jpg", 1)
}

// DurationSeconds converts an upstream duration value to whole seconds.
// Values of 100000 and above are taken as milliseconds, smaller values
// as seconds, matching the upstream heuristic for mixed-unit payloads.
func DurationSeconds(v interface{}) int64 {
	n := toInt64(v)
	if n <= 0 {
		return 0
	}
	if n >= 100000 {
		return n / 1000
	}
	return n
}

// ParseTags splits a raw tag-list string into clean tags: whitespace
// separated, quotes stripped, empties dropped.
func ParseTags(tagList string) []string {
	if tagList == "" {
		return nil
	}
	var tags []string
	for _, field := range strings.Fields(tagList) {
		tag := strings.TrimSpace(strings.ReplaceAll(field, `"`, ""))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
