package scraper

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher retrieves one page and hands back its parse tree. Implementations
// must honor context cancellation and return an error for any transport
// failure, including non-2xx responses.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}
