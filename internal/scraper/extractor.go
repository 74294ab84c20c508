package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sbmraj03/OLX-car-cover-scraper/internal/config"
	"github.com/sbmraj03/OLX-car-cover-scraper/internal/utils"
	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

// lookupFunc locates a field inside one listing container and returns its
// trimmed text. The second result is false when the field is absent.
type lookupFunc func(container *goquery.Selection, selector string) (string, bool)

// FieldExtractor pulls the three listing fields out of one container node.
type FieldExtractor struct {
	selectors config.SelectorConfig
	lookup    lookupFunc
	logger    utils.Logger
}

// NewFieldExtractor creates an extractor using goquery-based field lookup.
func NewFieldExtractor(selectors config.SelectorConfig, logger utils.Logger) *FieldExtractor {
	return &FieldExtractor{
		selectors: selectors,
		lookup:    findFieldText,
		logger:    logger,
	}
}

// Extract reads title, description, and price from container. A field that
// is simply absent becomes "N/A". If anything panics while the listing is
// being read, all three fields degrade to "Error extracting" together;
// partial success within one listing is not preserved.
func (fe *FieldExtractor) Extract(container *goquery.Selection) (record types.Listing) {
	defer func() {
		if r := recover(); r != nil {
			fe.logger.Warnf("error extracting listing data: %v", r)
			record = types.NewListing(types.SentinelError, types.SentinelError, types.SentinelError)
		}
	}()

	record = types.NewListing(
		fe.extractField(container, fe.selectors.Title),
		fe.extractField(container, fe.selectors.Description),
		fe.extractField(container, fe.selectors.Price),
	)
	return record
}

func (fe *FieldExtractor) extractField(container *goquery.Selection, selector string) string {
	value, ok := fe.lookup(container, selector)
	if !ok {
		return types.SentinelMissing
	}
	return value
}

func findFieldText(container *goquery.Selection, selector string) (string, bool) {
	found := container.Find(selector)
	if found.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(found.First().Text()), true
}
