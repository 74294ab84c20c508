package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

// CSVWriter writes listings as UTF-8 CSV with a header row and the stable
// column order title, description, price. No index column is emitted.
type CSVWriter struct {
	filename string
	file     *os.File
	writer   *csv.Writer
}

// NewCSVWriter creates a CSV writer targeting filename.
func NewCSVWriter(filename string) (*CSVWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %w", err)
	}

	return &CSVWriter{
		filename: filename,
		file:     file,
		writer:   csv.NewWriter(file),
	}, nil
}

// Write writes the header row and one row per listing.
func (w *CSVWriter) Write(records []types.Listing) error {
	if err := w.writer.Write(types.RequiredFields); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		row := make([]string, 0, len(types.RequiredFields))
		for _, field := range types.RequiredFields {
			row = append(row, record[field])
		}
		if err := w.writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	w.writer.Flush()
	return w.writer.Error()
}

// Close flushes and closes the underlying file.
func (w *CSVWriter) Close() error {
	if w.writer != nil {
		w.writer.Flush()
		w.writer = nil
	}
	if w.file != nil {
		err := w.file.Close()
		w.file = nil
		return err
	}
	return nil
}
