package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/sbmraj03/OLX-car-cover-scraper/internal/utils"
	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

// Driver walks search-result pages in order, harvesting each one.
type Driver struct {
	fetcher   Fetcher
	harvester *PageHarvester
	limiter   *rate.Limiter
	logger    utils.Logger
}

// NewDriver creates a pagination driver. delay is the minimum spacing
// between page fetches; zero disables it.
func NewDriver(fetcher Fetcher, harvester *PageHarvester, delay time.Duration, logger utils.Logger) *Driver {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if delay > 0 {
		limiter = rate.NewLimiter(rate.Every(delay), 1)
	}

	return &Driver{
		fetcher:   fetcher,
		harvester: harvester,
		limiter:   limiter,
		logger:    logger,
	}
}

// Run scrapes up to maxPages pages starting from searchURL and returns all
// accumulated records. Pagination is best-effort: a fetch failure or an
// empty page ends the walk and whatever was collected so far is returned.
func (d *Driver) Run(ctx context.Context, searchURL string, maxPages int) []types.Listing {
	var all []types.Listing

	for page := 1; page <= maxPages; page++ {
		// The first wait is satisfied by the limiter's burst token, so
		// the delay only applies between pages.
		if err := d.limiter.Wait(ctx); err != nil {
			d.logger.Warnf("pagination interrupted: %v", err)
			return all
		}

		pageURL := buildPageURL(searchURL, page)
		doc, err := d.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			d.logger.Errorf("failed to fetch page %d: %v", page, err)
			break
		}

		records := d.harvester.Harvest(doc)
		if len(records) == 0 {
			d.logger.Warnf("no listings found on page %d", page)
			break
		}

		d.logger.Infof("extracted %d listings from page %d", len(records), page)
		all = append(all, records...)
	}

	return all
}

// buildPageURL returns the URL for the given page number. Page 1 is the
// search URL untouched; later pages append a page query parameter.
func buildPageURL(searchURL string, page int) string {
	if page <= 1 {
		return searchURL
	}
	separator := "?"
	if strings.Contains(searchURL, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%spage=%d", searchURL, separator, page)
}
