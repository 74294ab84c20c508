package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

// JSONWriter writes listings as an indented JSON array.
type JSONWriter struct {
	filename string
	file     *os.File
}

// NewJSONWriter creates a JSON writer targeting filename.
func NewJSONWriter(filename string) (*JSONWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create JSON file: %w", err)
	}

	return &JSONWriter{
		filename: filename,
		file:     file,
	}, nil
}

// Write encodes the batch. An empty batch produces an empty array rather
// than null.
func (w *JSONWriter) Write(records []types.Listing) error {
	if records == nil {
		records = []types.Listing{}
	}

	encoder := json.NewEncoder(w.file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (w *JSONWriter) Close() error {
	if w.file != nil {
		err := w.file.Close()
		w.file = nil
		return err
	}
	return nil
}
