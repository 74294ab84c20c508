// Package types defines the listing record shared by the scraper,
// pipeline, and output layers.
package types

// Field keys of a listing record. Column order in every tabular output
// follows RequiredFields.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
)

// Sentinel values standing in for absent or failed fields. They are never
// genuine data and must not be counted as such by filtering or statistics.
const (
	SentinelMissing = "N/A"
	SentinelError   = "Error extracting"
)

// RequiredFields is the canonical field order for a listing record.
var RequiredFields = []string{FieldTitle, FieldDescription, FieldPrice}

// Listing is one scraped or synthesized product entry. It is map-shaped
// rather than a struct so that shape validation downstream can detect
// malformed records produced by extraction bugs.
type Listing map[string]string

// NewListing builds a listing from its three field values.
func NewListing(title, description, price string) Listing {
	return Listing{
		FieldTitle:       title,
		FieldDescription: description,
		FieldPrice:       price,
	}
}

// Title returns the title field, or the empty string when absent.
func (l Listing) Title() string { return l[FieldTitle] }

// Description returns the description field, or the empty string when absent.
func (l Listing) Description() string { return l[FieldDescription] }

// Price returns the price field, or the empty string when absent.
func (l Listing) Price() string { return l[FieldPrice] }

// Clone returns an independent copy of the listing.
func (l Listing) Clone() Listing {
	c := make(Listing, len(l))
	for k, v := range l {
		c[k] = v
	}
	return c
}

// HasRequiredFields reports whether every required field key is present.
func (l Listing) HasRequiredFields() bool {
	for _, key := range RequiredFields {
		if _, ok := l[key]; !ok {
			return false
		}
	}
	return true
}

// IsSentinel reports whether v is one of the reserved sentinel values.
func IsSentinel(v string) bool {
	return v == SentinelMissing || v == SentinelError
}

// Summary holds the statistics computed over a filtered listing batch.
type Summary struct {
	Total           int
	WithPrice       int
	WithDescription int
	// Completeness is WithPrice/Total as a percentage, rounded to one decimal.
	Completeness float64
}
