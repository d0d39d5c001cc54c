// internal/export/manager.go
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/soundscrape/soundscrape/internal/utils"
	"github.com/soundscrape/soundscrape/pkg/types"
)

// Manager dispatches on the export format and writes the generated
// artifact to disk. The generators themselves stay pure; all filesystem
// work lives here.
type Manager struct {
	outputDir string
	logger    utils.Logger
}

// NewManager creates an export manager writing into outputDir ("." when
// empty).
func NewManager(outputDir string, logger utils.Logger) *Manager {
	if outputDir == "" {
		outputDir = "."
	}
	if logger == nil {
		logger = utils.NewLogger()
	}
	return &Manager{outputDir: outputDir, logger: logger}
}

// Generate produces the artifact bytes for a format without writing them.
func (m *Manager) Generate(format Format, items []types.ExportItem) ([]byte, error) {
	generator, err := ForFormat(format)
	if err != nil {
		return nil, err
	}
	return generator.Generate(items)
}

// Write generates the artifact and writes it to <outputDir>/<name><ext>,
// sanitizing the name. Returns the written path.
func (m *Manager) Write(format Format, name string, items []types.ExportItem) (string, error) {
	data, err := m.Generate(format, items)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s export: %w", format, err)
	}

	if err := os.MkdirAll(m.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(m.outputDir, SanitizeFilename(name)+format.Extension())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s export: %w", format, err)
	}

	m.logger.Infof("wrote %s export (%d items, %d bytes) to %s", format, len(items), len(data), path)
	return path, nil
}
