// internal/export/csv.go
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/soundscrape/soundscrape/pkg/types"
)

// exportColumns is the fixed column order shared by the CSV and Excel
// generators.
var exportColumns = []string{"id", "name", "author", "url", "authorUrl", "type", "publishedAt", "slug"}

// CSVGenerator produces a CSV document with one header row and one row
// per item.
type CSVGenerator struct{}

// NewCSVGenerator creates a CSV generator.
func NewCSVGenerator() *CSVGenerator {
	return &CSVGenerator{}
}

// Generate renders the CSV document for the given items.
func (g *CSVGenerator) Generate(items []types.ExportItem) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportColumns); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, item := range items {
		record := []string{
			strconv.Itoa(item.ID),
			item.Name,
			item.Author,
			item.URL,
			item.AuthorURL,
			string(item.Type),
			item.PublishedAt,
			item.Slug,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
