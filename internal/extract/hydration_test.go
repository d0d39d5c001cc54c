// internal/extract/hydration_test.go
package extract

import (
	"encoding/json"
	"testing"
)

func TestExtractHydration(t *testing.T) {
	markup := `<html><head><script>
window.__sc_hydration = [{"hydratable":"user","data":{"username":"dj_example","followers_count":42}},{"hydratable":"tracks","data":[{"title":"First"}]}];
</script></head><body></body></html>`

	sections := ExtractHydration(markup)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if _, ok := sections["user"]; !ok {
		t.Error("expected user section to be present")
	}
	if _, ok := sections["tracks"]; !ok {
		t.Error("expected tracks section to be present")
	}
}

func TestExtractHydrationLastWins(t *testing.T) {
	markup := `<script>window.__sc_hydration = [
		{"hydratable":"user","data":{"username":"first"}},
		{"hydratable":"user","data":{"username":"second"}}
	];</script>`

	sections := ExtractHydration(markup)
	raw, ok := sections["user"]
	if !ok {
		t.Fatal("expected user section")
	}

	var user map[string]interface{}
	if err := json.Unmarshal(raw, &user); err != nil {
		t.Fatalf("failed to decode user section: %v", err)
	}
	if user["username"] != "second" {
		t.Errorf("expected last occurrence to win, got username %v", user["username"])
	}
}

func TestExtractHydrationAbsentOrMalformed(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{
			name:   "no hydration assignment",
			markup: `<html><body><p>nothing here</p></body></html>`,
		},
		{
			name:   "empty markup",
			markup: "",
		},
		{
			name:   "malformed JSON payload",
			markup: `<script>window.__sc_hydration = [{"hydratable":"user","data":{broken];</script>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections := ExtractHydration(tt.markup)
			if sections == nil {
				t.Fatal("expected non-nil map")
			}
			if len(sections) != 0 {
				t.Errorf("expected empty map, got %d sections", len(sections))
			}
		})
	}
}

func TestExtractHydrationSkipsUnusableEntries(t *testing.T) {
	markup := `<script>window.__sc_hydration = [
		{"hydratable":"","data":{"ignored":true}},
		{"hydratable":"empty"},
		{"hydratable":"nulldata","data":null},
		{"hydratable":"user","data":{"username":"kept"}}
	];</script>`

	sections := ExtractHydration(markup)
	if len(sections) != 1 {
		t.Fatalf("expected 1 usable section, got %d", len(sections))
	}
	if _, ok := sections["user"]; !ok {
		t.Error("expected user section to survive")
	}
	if _, ok := sections["nulldata"]; ok {
		t.Error("expected entry with null data to be dropped")
	}
}

func TestDecodeSection(t *testing.T) {
	sections := map[string]json.RawMessage{
		"user":  json.RawMessage(`{"username":"dj_example"}`),
		"notob": json.RawMessage(`[1,2,3]`),
	}

	user := DecodeSection(sections, "user")
	if user == nil {
		t.Fatal("expected decoded user section")
	}
	if user["username"] != "dj_example" {
		t.Errorf("expected username dj_example, got %v", user["username"])
	}

	if got := DecodeSection(sections, "missing"); got != nil {
		t.Errorf("expected nil for missing section, got %v", got)
	}
	if got := DecodeSection(sections, "notob"); got != nil {
		t.Errorf("expected nil for non-object section, got %v", got)
	}
}

func TestDecodeSectionList(t *testing.T) {
	sections := map[string]json.RawMessage{
		"bare":    json.RawMessage(`[{"title":"A"},{"title":"B"}]`),
		"wrapped": json.RawMessage(`{"collection":[{"title":"C"}]}`),
		"scalar":  json.RawMessage(`42`),
	}

	bare := DecodeSectionList(sections, "bare")
	if len(bare) != 2 {
		t.Fatalf("expected 2 items from bare array, got %d", len(bare))
	}
	if bare[0]["title"] != "A" || bare[1]["title"] != "B" {
		t.Errorf("bare array order not preserved: %v", bare)
	}

	wrapped := DecodeSectionList(sections, "wrapped")
	if len(wrapped) != 1 || wrapped[0]["title"] != "C" {
		t.Errorf("expected collection wrapper to decode, got %v", wrapped)
	}

	if got := DecodeSectionList(sections, "scalar"); got != nil {
		t.Errorf("expected nil for scalar section, got %v", got)
	}
	if got := DecodeSectionList(sections, "missing"); got != nil {
		t.Errorf("expected nil for missing section, got %v", got)
	}
}
