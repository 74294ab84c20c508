package scraper

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/sbmraj03/OLX-car-cover-scraper/internal/config"
	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

func listingHTML(container, title, description, price string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<%s data-aut-id="itemBox">`, container)
	if title != "" {
		fmt.Fprintf(&b, `<span data-aut-id="itemTitle">%s</span>`, title)
	}
	if description != "" {
		fmt.Fprintf(&b, `<span data-aut-id="itemDescription">%s</span>`, description)
	}
	if price != "" {
		fmt.Fprintf(&b, `<span data-aut-id="itemPrice">%s</span>`, price)
	}
	fmt.Fprintf(&b, `</%s>`, container)
	return b.String()
}

func newTestHarvester(t *testing.T) *PageHarvester {
	t.Helper()
	return NewPageHarvester(config.Default().Selectors, testLogger())
}

func TestHarvestUsesFirstMatchingStrategy(t *testing.T) {
	// Both div[data-aut-id] and EIR5N containers exist; only the first
	// strategy's matches may be consulted.
	html := listingHTML("div", "Primary strategy listing", "d", "₹ 100") +
		`<div class="EIR5N"><span data-aut-id="itemTitle">Fallback listing</span></div>`

	records := newTestHarvester(t).Harvest(docFromHTML(t, html))

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Title() != "Primary strategy listing" {
		t.Errorf("title = %q, want the first-strategy listing", records[0].Title())
	}
}

func TestHarvestFallbackStrategies(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		title string
	}{
		{
			name:  "class substring fallback",
			html:  `<div class="fx-grid EIR5N item"><span data-aut-id="itemTitle">Dustproof Hatchback Cover</span></div>`,
			title: "Dustproof Hatchback Cover",
		},
		{
			name:  "li container fallback",
			html:  listingHTML("li", "Outdoor Monsoon Car Cover", "", "₹ 1,499"),
			title: "Outdoor Monsoon Car Cover",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := newTestHarvester(t).Harvest(docFromHTML(t, tt.html))
			if len(records) != 1 {
				t.Fatalf("got %d records, want 1", len(records))
			}
			if records[0].Title() != tt.title {
				t.Errorf("title = %q, want %q", records[0].Title(), tt.title)
			}
		})
	}
}

func TestHarvestNoMatchReturnsEmpty(t *testing.T) {
	html := `<div class="unrelated"><span>nothing here</span></div>`
	if records := newTestHarvester(t).Harvest(docFromHTML(t, html)); len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

// The harvest-time filter drops only the plain "N/A" missing-title sentinel.
// Fully failed records keep flowing so the run can account for them; the
// stricter filtering happens later in the pipeline.
func TestHarvestFilterAsymmetry(t *testing.T) {
	html := listingHTML("div", "Premium Car Cover for Sedan", "Waterproof", "₹ 999") +
		listingHTML("div", "UV Protection Car Body Cover", "Anti-scratch", "") +
		`<div data-aut-id="itemBox" data-broken="yes"><span data-aut-id="itemTitle">x</span></div>` +
		listingHTML("div", "", "orphan description", "₹ 100")

	ph := newTestHarvester(t)

	// Simulate an unexpected markup failure for the marked container.
	ph.extractor.lookup = func(container *goquery.Selection, selector string) (string, bool) {
		if _, broken := container.Attr("data-broken"); broken {
			panic("malformed listing markup")
		}
		return findFieldText(container, selector)
	}

	records := ph.Harvest(docFromHTML(t, html))

	if len(records) != 3 {
		t.Fatalf("got %d records, want 3 (missing-title record dropped, failed record kept)", len(records))
	}

	if records[0].Title() != "Premium Car Cover for Sedan" {
		t.Errorf("record 0 title = %q", records[0].Title())
	}
	if records[1].Price() != types.SentinelMissing {
		t.Errorf("record 1 price = %q, want %q", records[1].Price(), types.SentinelMissing)
	}
	for _, key := range types.RequiredFields {
		if records[2][key] != types.SentinelError {
			t.Errorf("record 2 field %s = %q, want %q", key, records[2][key], types.SentinelError)
		}
	}
}
