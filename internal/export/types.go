// internal/export/types.go

// Package export produces downloadable helper artifacts from already
// fetched collections: a batch download script, a plain URL list, JSON,
// CSV, and Excel documents. Generators are pure: they return bytes and
// never touch the network or the services layer.
package export

import (
	"fmt"

	"github.com/soundscrape/soundscrape/pkg/types"
)

// Format identifies an export artifact kind.
type Format string

const (
	FormatScript  Format = "script"
	FormatURLList Format = "urls"
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
	FormatExcel   Format = "xlsx"
)

// ValidFormats returns all supported export formats.
func ValidFormats() []Format {
	return []Format{FormatScript, FormatURLList, FormatJSON, FormatCSV, FormatExcel}
}

// IsValid checks whether the format is supported.
func (f Format) IsValid() bool {
	for _, valid := range ValidFormats() {
		if f == valid {
			return true
		}
	}
	return false
}

// Extension returns the file extension for the format, dot included.
func (f Format) Extension() string {
	switch f {
	case FormatScript:
		return ".bat"
	case FormatURLList:
		return ".txt"
	case FormatJSON:
		return ".json"
	case FormatCSV:
		return ".csv"
	case FormatExcel:
		return ".xlsx"
	default:
		return ""
	}
}

// Generator turns an export item list into one artifact.
type Generator interface {
	Generate(items []types.ExportItem) ([]byte, error)
}

// ForFormat returns the generator for a format.
func ForFormat(format Format) (Generator, error) {
	switch format {
	case FormatScript:
		return NewScriptGenerator(), nil
	case FormatURLList:
		return NewURLListGenerator(), nil
	case FormatJSON:
		return NewJSONGenerator(), nil
	case FormatCSV:
		return NewCSVGenerator(), nil
	case FormatExcel:
		return NewExcelGenerator(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}
