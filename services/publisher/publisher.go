package publisher

import "context"

// Publisher represents a service for publishing scrape results
type Publisher interface {
	// Publish publishes a serialized result keyed by site
	Publish(ctx context.Context, site string, message []byte) error

	// TrimStreams trims all streams to the configured maximum length
	TrimStreams(ctx context.Context) error

	// Close closes the publisher connection
	Close() error
}
