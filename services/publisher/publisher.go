package publisher

import "context"

// Publisher represents a service for publishing extracted listings
type Publisher interface {
	// Publish publishes one encoded listing found on the target page
	Publish(ctx context.Context, target string, message []byte) error

	// TrimStreams trims all streams to the configured maximum length
	TrimStreams(ctx context.Context) error

	// Close closes the publisher connection
	Close() error
}

// NopPublisher discards everything; it is used when publishing is disabled
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, []byte) error { return nil }
func (NopPublisher) TrimStreams(context.Context) error               { return nil }
func (NopPublisher) Close() error                                    { return nil }
