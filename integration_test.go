package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"edelgado544/ecomscraper/internal/scraper"
)

// A product page with generic markup only; test server hosts resolve to the
// generic profile
const testProductHTML = `
<!DOCTYPE html>
<html>
<head>
    <title>Test Shop</title>
</head>
<body>
    <h1>Acme Widget Deluxe</h1>
    <div class="product-info">
        <span class="price">$1,299.99</span>
        <span class="stock">In stock</span>
    </div>
</body>
</html>
`

func TestScrapeEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(testProductHTML))
	}))
	defer server.Close()

	s := scraper.New(scraper.NewRegistry(), scraper.Options{})
	result := s.Run(context.Background(), server.URL+"/product/42")

	assert.True(t, result.Success)
	assert.Equal(t, server.URL+"/product/42", result.URL)
	assert.Equal(t, "generic", result.Site)
	assert.Equal(t, "Acme Widget Deluxe", result.Title)
	assert.Equal(t, "1299.99", result.Price)
	assert.Equal(t, "USD", result.Currency)

	// The result must round-trip as JSON for the caller boundary
	data, err := json.Marshal(result)
	assert.NoError(t, err)

	var decoded scraper.ScrapingResult
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, result, decoded)
}

func TestScrapeEndToEndServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := scraper.New(scraper.NewRegistry(), scraper.Options{})
	result := s.Run(context.Background(), server.URL)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "503")
	assert.Empty(t, result.Title)
	assert.Empty(t, result.Price)
}

func TestScrapeEndToEndTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	s := scraper.New(scraper.NewRegistry(), scraper.Options{Deadline: 100 * time.Millisecond})

	start := time.Now()
	result := s.Run(context.Background(), server.URL)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "timeout")
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestScrapeEndToEndOmitsEmptyFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body><p>no product here</p></body></html>"))
	}))
	defer server.Close()

	s := scraper.New(scraper.NewRegistry(), scraper.Options{})
	result := s.Run(context.Background(), server.URL)
	assert.True(t, result.Success)

	data, err := json.Marshal(result)
	assert.NoError(t, err)

	// Absent optional fields stay out of the serialized record
	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "title")
	assert.NotContains(t, raw, "price")
	assert.NotContains(t, raw, "currency")
	assert.NotContains(t, raw, "error")
	assert.Contains(t, raw, "timestamp")
}
