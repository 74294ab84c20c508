package output

import (
	"fmt"

	"github.com/sbmraj03/OLX-car-cover-scraper/internal/utils"
	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

// Manager dispatches export requests to the writer for the configured
// format.
type Manager struct {
	format Format
	file   string
	logger utils.Logger
}

// NewManager creates an output manager for the given format and target
// file.
func NewManager(format Format, file string, logger utils.Logger) (*Manager, error) {
	if !IsValidFormat(format) {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	if file == "" {
		return nil, fmt.Errorf("output file is required")
	}

	return &Manager{
		format: format,
		file:   file,
		logger: logger,
	}, nil
}

// NewWriter returns a fresh writer for the configured format.
func (m *Manager) NewWriter() (Writer, error) {
	switch m.format {
	case FormatCSV:
		return NewCSVWriter(m.file)
	case FormatJSON:
		return NewJSONWriter(m.file)
	case FormatXLSX:
		return NewExcelWriter(m.file)
	case FormatSQLite:
		return NewSQLiteWriter(m.file)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", m.format)
	}
}

// Write persists the batch and closes the writer.
func (m *Manager) Write(records []types.Listing) error {
	writer, err := m.NewWriter()
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}
	defer writer.Close()

	if err := writer.Write(records); err != nil {
		return err
	}

	m.logger.Infof("results saved to %s", m.file)
	return nil
}

// File returns the configured output path.
func (m *Manager) File() string {
	return m.file
}
