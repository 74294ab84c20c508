// Package output renders listing batches to the console and persists them
// in one of several tabular formats.
package output

import (
	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

// Format represents a supported export format.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// ValidFormats returns every supported export format.
func ValidFormats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatXLSX, FormatSQLite}
}

// IsValidFormat reports whether f names a supported format.
func IsValidFormat(f Format) bool {
	for _, valid := range ValidFormats() {
		if f == valid {
			return true
		}
	}
	return false
}

// Writer persists one batch of listings to a file.
type Writer interface {
	Write(records []types.Listing) error
	Close() error
}
