package scraper

import (
	"net/url"
	"strings"

	apperr "edelgado544/ecomscraper/pkg/errors"
)

// ValidateURL checks that the input is an absolute http(s) URL with a host.
// Run before classification; ExtractDomain assumes a validated input.
func ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return apperr.NewValidation("invalid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return apperr.NewValidation("invalid URL")
	}
	if parsed.Host == "" {
		return apperr.NewValidation("invalid URL")
	}
	return nil
}

// ExtractDomain normalizes a URL to its canonical domain: scheme stripped,
// leading "www." label stripped, path cut off, lowercased. Pure function.
func ExtractDomain(rawURL string) string {
	domain := rawURL
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimPrefix(domain, "www.")
	if idx := strings.Index(domain, "/"); idx >= 0 {
		domain = domain[:idx]
	}
	return strings.ToLower(domain)
}
