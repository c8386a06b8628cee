package scraper

import (
	"context"
	"io"
)

// SiteProfile holds the ordered extraction rules for one recognized site.
// Profiles are defined once at startup and never mutated.
type SiteProfile struct {
	// Domain is the registry key, matched by substring containment
	// against the classified domain ("generic" for the fallback profile)
	Domain string

	// TitleSelectors are CSS selectors tried in order until one matches
	TitleSelectors []string

	// PriceSelectors are CSS selectors tried in order until one matches
	PriceSelectors []string

	// Currency optionally resolves the ambiguous "$" symbol for this site
	Currency string
}

// ExtractedField holds a raw match and the rule index that produced it
type ExtractedField struct {
	Text      string
	RuleIndex int
}

// ScrapingResult is the uniform output record for one scrape request.
// Success reports whether the page was fetched and parsed; title and price
// may be absent on a successful scrape when no selector matched.
type ScrapingResult struct {
	Success   bool   `json:"success"`
	URL       string `json:"url"`
	Title     string `json:"title,omitempty"`
	Price     string `json:"price,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Site      string `json:"site,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Fetcher retrieves the raw HTML for a URL. Implementations must honor
// context cancellation by aborting the in-flight request.
type Fetcher func(ctx context.Context, url string) (io.Reader, error)
