// internal/export/excel.go
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/soundscrape/soundscrape/pkg/types"
)

const excelSheetName = "Tracks"

// ExcelGenerator produces an xlsx workbook with one sheet: a bold header
// row over one row per item, columns matching the CSV layout.
type ExcelGenerator struct{}

// NewExcelGenerator creates an Excel generator.
func NewExcelGenerator() *ExcelGenerator {
	return &ExcelGenerator{}
}

// Generate renders the workbook for the given items.
func (g *ExcelGenerator) Generate(items []types.ExportItem) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(excelSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	header := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := file.SetSheetRow(excelSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		_ = file.SetCellStyle(excelSheetName, "A1", endCell, headerStyle)
	}

	for i, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell for row %d: %w", i+2, err)
		}
		row := []interface{}{
			item.ID,
			item.Name,
			item.Author,
			item.URL,
			item.AuthorURL,
			string(item.Type),
			item.PublishedAt,
			item.Slug,
		}
		if err := file.SetSheetRow(excelSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
