package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation represents invalid input errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeNetwork represents network-related errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeHTTPStatus represents non-2xx HTTP responses
	ErrorTypeHTTPStatus ErrorType = "http_status"
	// ErrorTypeRateLimit represents rate limiting errors
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeTimeout represents deadline expiry errors
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypePrice represents price normalization errors
	ErrorTypePrice ErrorType = "price"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// ScrapeError represents a scraper-specific error
type ScrapeError struct {
	Type    ErrorType
	Site    string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	if e.Err != nil {
		if e.Site != "" {
			return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Site, e.Message, e.Err)
		}
		return fmt.Sprintf("[%s] %s - %v", e.Type, e.Message, e.Err)
	}
	if e.Site != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Type, e.Site, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// IsTerminal returns true if the error fails the whole request.
// Price normalization errors are recovered by omitting the field.
func (e *ScrapeError) IsTerminal() bool {
	return e.Type != ErrorTypePrice
}

// New creates a new ScrapeError
func New(errType ErrorType, site, message string, err error) *ScrapeError {
	return &ScrapeError{
		Type:    errType,
		Site:    site,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewValidation creates a new validation error
func NewValidation(message string) *ScrapeError {
	return New(ErrorTypeValidation, "", message, nil)
}

// NewNetwork creates a new network error
func NewNetwork(site, message string, err error) *ScrapeError {
	return New(ErrorTypeNetwork, site, message, err)
}

// NewHTTPStatus creates a new HTTP status error
func NewHTTPStatus(site string, statusCode int) *ScrapeError {
	message := fmt.Sprintf("unexpected status code: %d", statusCode)
	return New(ErrorTypeHTTPStatus, site, message, nil)
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(site, retryAfter string) *ScrapeError {
	message := "rate limited"
	if retryAfter != "" {
		message = fmt.Sprintf("rate limited; retry after %s", retryAfter)
	}
	return New(ErrorTypeRateLimit, site, message, nil)
}

// NewTimeout creates a new timeout error
func NewTimeout(site string, budget time.Duration) *ScrapeError {
	message := fmt.Sprintf("timeout after %s", budget)
	return New(ErrorTypeTimeout, site, message, nil)
}

// NewParsing creates a new parsing error
func NewParsing(site, message string, err error) *ScrapeError {
	return New(ErrorTypeParsing, site, message, err)
}

// NewPrice creates a new price normalization error
func NewPrice(message string, err error) *ScrapeError {
	return New(ErrorTypePrice, "", message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *ScrapeError {
	return New(ErrorTypeConfiguration, "", message, err)
}
