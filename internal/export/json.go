// internal/export/json.go
package export

import (
	"encoding/json"

	"github.com/soundscrape/soundscrape/pkg/types"
)

// JSONGenerator produces an indented JSON array of export projections.
// Round-trip property: parsing the output back yields the input items in
// original order.
type JSONGenerator struct{}

// NewJSONGenerator creates a JSON generator.
func NewJSONGenerator() *JSONGenerator {
	return &JSONGenerator{}
}

// Generate serializes the items as an indented JSON array. A nil slice
// still serializes as [].
func (g *JSONGenerator) Generate(items []types.ExportItem) ([]byte, error) {
	if items == nil {
		items = []types.ExportItem{}
	}
	return json.MarshalIndent(items, "", "  ")
}
