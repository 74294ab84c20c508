package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

const excelSheetName = "Listings"

// ExcelWriter writes listings to an XLSX workbook with a single sheet.
type ExcelWriter struct {
	filename string
	file     *excelize.File
}

// NewExcelWriter creates an XLSX writer targeting filename.
func NewExcelWriter(filename string) (*ExcelWriter, error) {
	file := excelize.NewFile()
	index, err := file.NewSheet(excelSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	file.SetActiveSheet(index)

	// Drop the default sheet so the workbook has a single, named one.
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	return &ExcelWriter{
		filename: filename,
		file:     file,
	}, nil
}

// Write fills the sheet: bold header row, then one row per listing in the
// stable column order.
func (w *ExcelWriter) Write(records []types.Listing) error {
	headerStyle, err := w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, field := range types.RequiredFields {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := w.file.SetCellValue(excelSheetName, cell, field); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		if err := w.file.SetCellStyle(excelSheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}

	for row, record := range records {
		for col, field := range types.RequiredFields {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := w.file.SetCellValue(excelSheetName, cell, record[field]); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if err := w.file.SaveAs(w.filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Close releases the in-memory workbook.
func (w *ExcelWriter) Close() error {
	if w.file != nil {
		err := w.file.Close()
		w.file = nil
		return err
	}
	return nil
}
