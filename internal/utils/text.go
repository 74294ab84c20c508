package utils

import "fmt"

// Truncate shortens text to at most max runes, appending an ellipsis when
// anything was cut. Multi-byte text is cut on rune boundaries.
func Truncate(text string, max int) string {
	if max <= 3 {
		max = 3
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}

// SuccessMessage builds the end-of-run message, pluralized by count.
func SuccessMessage(count int) string {
	switch count {
	case 0:
		return "No listings found. Try checking the search URL or network connection."
	case 1:
		return "Successfully found 1 car cover listing!"
	default:
		return fmt.Sprintf("Successfully found %d car cover listings!", count)
	}
}

// Banner is printed at startup unless quiet mode is on.
const Banner = `
  ╔══════════════════════════════════════╗
  ║         OLX Car Cover Scraper        ║
  ╚══════════════════════════════════════╝
`
