package crawler

import (
	"context"
	"time"

	"sjsage522/olxworker/config"
	"sjsage522/olxworker/internal/extractor"
)

// Source tells where a result's records came from
type Source string

const (
	// SourcePage records were extracted from the fetched page
	SourcePage Source = "page"
	// SourceSample records are the built-in sample listings
	SourceSample Source = "sample"
)

// Result is the outcome of crawling one target page
type Result struct {
	Target  string
	Records []extractor.Record
	// Strategy names the extraction strategy that produced the records
	Strategy string
	Source   Source
	// FetchErr is the retrieval error that caused a fallback to samples
	FetchErr error
}

// Crawler interface defines the contract for all crawler implementations
type Crawler interface {
	// FetchListings retrieves listings from the target page
	FetchListings(ctx context.Context) (Result, error)

	// GetName returns a short identifier used for logs and file names
	GetName() string

	// GetTarget returns the page URL the crawler reads
	GetTarget() string
}

// CrawlerConfig contains configuration for a crawler
type CrawlerConfig struct {
	URL    string
	Name   string
	Origin string
	Rules  config.Rules
	// BlockTime is how long to stop requesting after being rate limited
	BlockTime time.Duration
	// PageTTL caches fetched pages; zero disables the page cache
	PageTTL       time.Duration
	SampleOnEmpty bool
}
