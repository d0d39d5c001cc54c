// internal/export/manager_test.go
package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestManagerWrite(t *testing.T) {
	dir := t.TempDir()
	manager := NewManager(dir, nil)

	path, err := manager.Write(FormatJSON, "dj_example-tracks", sampleItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("expected artifact under %s, got %s", dir, path)
	}
	if !strings.HasSuffix(path, "dj_example-tracks.json") {
		t.Errorf("unexpected artifact name: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}
	if len(data) == 0 {
		t.Error("artifact is empty")
	}
}

func TestManagerWriteSanitizesName(t *testing.T) {
	dir := t.TempDir()
	manager := NewManager(dir, nil)

	path, err := manager.Write(FormatURLList, `bad/name: "weird"`, sampleItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	base := filepath.Base(path)
	if strings.ContainsAny(base, `/\:"`) {
		t.Errorf("unsafe characters survived in artifact name: %q", base)
	}
}

func TestManagerWriteCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	manager := NewManager(dir, nil)

	if _, err := manager.Write(FormatCSV, "tracks", sampleItems()); err != nil {
		t.Fatalf("expected nested output directory to be created: %v", err)
	}
}

func TestManagerGenerateUnsupportedFormat(t *testing.T) {
	manager := NewManager(t.TempDir(), nil)
	if _, err := manager.Generate("pdf", sampleItems()); err == nil {
		t.Error("expected error for unsupported format")
	}
}
