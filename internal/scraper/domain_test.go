package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDomain(t *testing.T) {
	testCases := []struct {
		url      string
		expected string
	}{
		{"https://www.amazon.com/dp/B08N5WRWNW", "amazon.com"},
		{"http://www.amazon.com/dp/B08N5WRWNW", "amazon.com"},
		{"https://amazon.com/dp/B08N5WRWNW", "amazon.com"},
		{"https://www.ebay.com/itm/123456789", "ebay.com"},
		{"https://articulo.mercadolibre.com.mx/MLM-123", "articulo.mercadolibre.com.mx"},
		{"https://WWW.Amazon.COM/dp/B08N5WRWNW", "amazon.com"},
		{"https://example.com", "example.com"},
		{"https://example.com:8080/product", "example.com:8080"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ExtractDomain(tc.url), "url: %s", tc.url)
	}
}

func TestExtractDomainIsPure(t *testing.T) {
	url := "https://www.amazon.com/dp/B08N5WRWNW"
	assert.Equal(t, ExtractDomain(url), ExtractDomain(url))
}

func TestValidateURL(t *testing.T) {
	valid := []string{
		"https://www.amazon.com/dp/B08N5WRWNW",
		"http://example.com",
		"https://example.com:8080/path?query=1",
	}
	for _, url := range valid {
		assert.NoError(t, ValidateURL(url), "url: %s", url)
	}

	invalid := []string{
		"",
		"not a url",
		"amazon.com/dp/B08N5WRWNW",
		"ftp://example.com/file",
		"https://",
		"://missing-scheme.com",
	}
	for _, url := range invalid {
		assert.Error(t, ValidateURL(url), "url: %s", url)
	}
}
