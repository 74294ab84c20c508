package scraper

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/sbmraj03/OLX-car-cover-scraper/internal/config"
	"github.com/sbmraj03/OLX-car-cover-scraper/internal/utils"
	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

// containerMatcher is one strategy for locating listing containers in a page.
type containerMatcher struct {
	selector string
	match    func(doc *goquery.Document) *goquery.Selection
}

// PageHarvester turns one fetched page into raw listing records.
type PageHarvester struct {
	matchers  []containerMatcher
	extractor *FieldExtractor
	logger    utils.Logger
}

// NewPageHarvester builds a harvester whose container strategies are tried
// in the order given by cfg.Containers.
func NewPageHarvester(cfg config.SelectorConfig, logger utils.Logger) *PageHarvester {
	matchers := make([]containerMatcher, 0, len(cfg.Containers))
	for _, sel := range cfg.Containers {
		sel := sel
		matchers = append(matchers, containerMatcher{
			selector: sel,
			match: func(doc *goquery.Document) *goquery.Selection {
				return doc.Find(sel)
			},
		})
	}

	return &PageHarvester{
		matchers:  matchers,
		extractor: NewFieldExtractor(cfg, logger),
		logger:    logger,
	}
}

// Harvest locates listing containers and extracts a record from each. The
// first matcher that finds anything is used exclusively; later matchers are
// never consulted once an earlier one matched. Records whose title is the
// "N/A" sentinel are dropped here; fully failed records ("Error extracting")
// pass through so the run can account for them downstream.
func (ph *PageHarvester) Harvest(doc *goquery.Document) []types.Listing {
	containers := ph.findContainers(doc)
	if containers == nil {
		return nil
	}

	var records []types.Listing
	containers.Each(func(_ int, container *goquery.Selection) {
		record := ph.extractor.Extract(container)
		if record.Title() != types.SentinelMissing {
			records = append(records, record)
		}
	})

	return records
}

// findContainers runs the matcher chain, first non-empty match wins.
func (ph *PageHarvester) findContainers(doc *goquery.Document) *goquery.Selection {
	for _, m := range ph.matchers {
		if found := m.match(doc); found.Length() > 0 {
			ph.logger.Debugf("selector %q matched %d containers", m.selector, found.Length())
			return found
		}
	}
	return nil
}
