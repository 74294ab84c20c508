// Package mock produces synthetic car-cover listings for offline runs and
// for the fallback path when live harvesting comes back empty.
package mock

import (
	"math/rand"
	"time"

	"github.com/sbmraj03/OLX-car-cover-scraper/pkg/types"
)

var titles = []string{
	"Premium Car Cover for Sedan",
	"All-Weather SUV Car Body Cover",
	"Dustproof Hatchback Cover",
	"Waterproof Car Cover with Mirror Pockets",
	"UV Protection Car Body Cover",
	"Heavy Duty Silver Coated Cover",
	"Compact Car Body Cover",
	"Outdoor Monsoon Car Cover",
	"Elastic Fit Car Body Cover",
	"Breathable Car Cover",
}

var features = []string{
	"Waterproof, UV Protection, Dustproof",
	"Heavy duty, mirror pockets",
	"Silver coated, strap & buckle",
	"All-season protection, soft inner lining",
	"Anti-scratch, elastic hem",
	"Includes storage bag",
	"Triple-stitch seams",
	"Windproof straps",
	"Heat resistant",
	"Lightweight and durable",
}

var prices = []string{
	"₹ 999", "₹ 1,199", "₹ 1,299", "₹ 1,499", "₹ 1,799", "₹ 1,999", "₹ 2,199",
}

// Generator samples listings from fixed pools with replacement.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded from the clock.
func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGeneratorWithSource creates a generator over an injected random
// source, so tests can seed it.
func NewGeneratorWithSource(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate returns n synthetic listings. Each field is drawn independently
// from its pool; duplicates across records are expected.
func (g *Generator) Generate(n int) []types.Listing {
	listings := make([]types.Listing, 0, n)
	for i := 0; i < n; i++ {
		listings = append(listings, types.NewListing(
			titles[g.rng.Intn(len(titles))],
			features[g.rng.Intn(len(features))],
			prices[g.rng.Intn(len(prices))],
		))
	}
	return listings
}
