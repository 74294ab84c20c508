package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sbmraj03/OLX-car-cover-scraper/internal/utils"
	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

const (
	tableBannerWidth = 80
	tableCellWidth   = 50
)

// RenderTable writes an aligned console table of the listings with a row
// count banner. Long cells are truncated for readability; the persisted
// exports keep full values.
func RenderTable(w io.Writer, records []types.Listing) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No listings found!")
		return
	}

	rule := strings.Repeat("=", tableBannerWidth)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "FOUND %d CAR COVER LISTINGS ON OLX\n", len(records))
	fmt.Fprintln(w, rule)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tDESCRIPTION\tPRICE")
	for i, record := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			i,
			utils.Truncate(record.Title(), tableCellWidth),
			utils.Truncate(record.Description(), tableCellWidth),
			utils.Truncate(record.Price(), tableCellWidth),
		)
	}
	tw.Flush()

	fmt.Fprintf(w, "%s\n\n", rule)
}

// RenderSummary writes the summary-statistics block.
func RenderSummary(w io.Writer, s types.Summary) {
	rule := strings.Repeat("=", 40)
	fmt.Fprintln(w, "\nSUMMARY STATISTICS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total listings found: %d\n", s.Total)
	fmt.Fprintf(w, "Listings with price: %d\n", s.WithPrice)
	fmt.Fprintf(w, "Listings with description: %d\n", s.WithDescription)
	fmt.Fprintf(w, "Data completeness: %.1f%%\n", s.Completeness)
	fmt.Fprintf(w, "%s\n\n", rule)
}
