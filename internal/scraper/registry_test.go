package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryLookupKnownDomains(t *testing.T) {
	registry := NewRegistry()

	testCases := []struct {
		domain   string
		expected string
	}{
		{"amazon.com", "amazon.com"},
		{"www.amazon.com", "amazon.com"},
		{"amazon.com.mx", "amazon.com"},
		{"ebay.com", "ebay.com"},
		{"mercadolibre.com", "mercadolibre.com"},
		{"mercadolibre.com.mx", "mercadolibre.com.mx"},
		{"articulo.mercadolibre.com.mx", "mercadolibre.com.mx"},
		{"AMAZON.COM", "amazon.com"},
	}

	for _, tc := range testCases {
		profile := registry.Lookup(tc.domain)
		assert.Equal(t, tc.expected, profile.Domain, "domain: %s", tc.domain)
		assert.NotEmpty(t, profile.TitleSelectors)
		assert.NotEmpty(t, profile.PriceSelectors)
	}
}

func TestRegistryLookupUnknownDomainFallsBackToGeneric(t *testing.T) {
	registry := NewRegistry()

	for _, domain := range []string{"example.com", "shopify.dev", ""} {
		profile := registry.Lookup(domain)
		assert.Equal(t, "generic", profile.Domain)
		assert.NotEmpty(t, profile.TitleSelectors)
		assert.NotEmpty(t, profile.PriceSelectors)
	}
}

func TestRegistrySpecificKeyWinsOverBroaderKey(t *testing.T) {
	registry := NewRegistry()

	// mercadolibre.com.mx contains mercadolibre.com; the country profile
	// must win because it is listed first
	profile := registry.Lookup("mercadolibre.com.mx")
	assert.Equal(t, "mercadolibre.com.mx", profile.Domain)
	assert.Equal(t, "MXN", profile.Currency)
}

func TestRegistryProfilesHaveOrderedRules(t *testing.T) {
	registry := NewRegistry()

	// The highest-reliability amazon selectors must stay first
	profile := registry.Lookup("amazon.com")
	assert.Equal(t, "#productTitle", profile.TitleSelectors[0])
	assert.Equal(t, ".a-price-whole", profile.PriceSelectors[0])
}
