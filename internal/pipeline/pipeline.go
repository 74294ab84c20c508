// Package pipeline normalizes raw listing batches: cleaning, validity
// filtering, shape validation, and summary statistics.
package pipeline

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/sbmraj03/OLX-car-cover-scraper/internal/utils"
	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

// Pipeline applies the normalization stages in order. Every stage is pure:
// input slices are never mutated.
type Pipeline struct {
	logger utils.Logger
}

// New creates a pipeline.
func New(logger utils.Logger) *Pipeline {
	return &Pipeline{logger: logger}
}

// Clean returns a cleaned copy of every record: title and description are
// NFC-normalized and trimmed, and a real (non-sentinel) price has its inner
// whitespace runs collapsed to single spaces. Clean is idempotent.
func (p *Pipeline) Clean(records []types.Listing) []types.Listing {
	cleaned := make([]types.Listing, 0, len(records))

	for _, record := range records {
		c := record.Clone()
		c[types.FieldTitle] = cleanText(record.Title())
		c[types.FieldDescription] = cleanText(record.Description())

		if price := record.Price(); price != "" && price != types.SentinelMissing {
			c[types.FieldPrice] = collapseSpaces(norm.NFC.String(price))
		}

		cleaned = append(cleaned, c)
	}

	return cleaned
}

// Filter keeps records whose title is real data: present, not a sentinel,
// and longer than 5 characters. Order is preserved and the dropped count is
// logged for diagnostics.
func (p *Pipeline) Filter(records []types.Listing) []types.Listing {
	valid := make([]types.Listing, 0, len(records))

	for _, record := range records {
		title := record.Title()
		if title == "" || types.IsSentinel(title) {
			continue
		}
		if utf8.RuneCountInString(title) <= 5 {
			continue
		}
		valid = append(valid, record)
	}

	p.logger.Infof("filtered %d valid listings from %d total", len(valid), len(records))
	return valid
}

// ValidateShape checks that every record carries all three required field
// keys. A single malformed record rejects the whole batch: this guards a
// programming invariant, it is not a per-record filter. An empty batch is
// valid.
func (p *Pipeline) ValidateShape(records []types.Listing) error {
	for i, record := range records {
		if !record.HasRequiredFields() {
			return fmt.Errorf("record %d is missing required fields", i)
		}
	}
	return nil
}

// Summarize computes batch statistics. The second result is false for an
// empty batch, for which no summary is defined.
func (p *Pipeline) Summarize(records []types.Listing) (types.Summary, bool) {
	if len(records) == 0 {
		return types.Summary{}, false
	}

	s := types.Summary{Total: len(records)}
	for _, record := range records {
		if v := record.Price(); v != "" && !types.IsSentinel(v) {
			s.WithPrice++
		}
		if v := record.Description(); v != "" && !types.IsSentinel(v) {
			s.WithDescription++
		}
	}

	pct := float64(s.WithPrice) / float64(s.Total) * 100
	s.Completeness = math.Round(pct*10) / 10

	return s, true
}

func cleanText(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}

// collapseSpaces trims the text and replaces internal whitespace runs with
// single spaces.
func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
