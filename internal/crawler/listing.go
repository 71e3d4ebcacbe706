package crawler

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"sjsage522/olxworker/internal/extractor"
	"sjsage522/olxworker/logger"
	apperrors "sjsage522/olxworker/pkg/errors"
	"sjsage522/olxworker/services/cache"
)

// ListingCrawler fetches a marketplace search page and runs the extraction
// cascade over it, substituting sample listings when the page is unavailable
type ListingCrawler struct {
	BaseCrawler
	name          string
	cascade       *extractor.Cascade
	sampleOnEmpty bool
}

// NewListingCrawler creates a new listing crawler
func NewListingCrawler(config CrawlerConfig, cacheSvc cache.CacheService) *ListingCrawler {
	return &ListingCrawler{
		BaseCrawler: BaseCrawler{
			URL:       config.URL,
			CacheSvc:  cacheSvc,
			BlockTime: config.BlockTime,
			PageTTL:   config.PageTTL,
		},
		name:          config.Name,
		cascade:       extractor.New(config.Rules, config.Origin, extractor.NewLogObserver(config.URL)),
		sampleOnEmpty: config.SampleOnEmpty,
	}
}

// GetName returns the crawler name
func (c *ListingCrawler) GetName() string {
	return c.name
}

// GetTarget returns the page URL
func (c *ListingCrawler) GetTarget() string {
	return c.URL
}

// FetchListings fetches the page and extracts listings from it
func (c *ListingCrawler) FetchListings(ctx context.Context) (Result, error) {
	log := logger.ForCrawler(c.URL)

	body, err := c.fetchWithCache(ctx)
	if err == nil {
		doc, parseErr := c.createDocument(body)
		if parseErr == nil {
			return c.extract(doc), nil
		}
		err = parseErr
	}

	// Shutting down is not a retrieval failure
	if ctx.Err() != nil {
		return Result{Target: c.URL}, ctx.Err()
	}
	if !apperrors.IsRetrievalFailure(err) {
		return Result{Target: c.URL}, err
	}

	log.Warn().Err(err).Msg("Page unavailable, using sample listings")
	return c.sampleResult(err), nil
}

// extract runs the cascade and applies the empty-result policy
func (c *ListingCrawler) extract(doc *goquery.Document) Result {
	result := c.cascade.Run(doc)
	if result.Exhausted() && c.sampleOnEmpty {
		logger.ForCrawler(c.URL).Warn().Msg("No listings extracted, using sample listings")
		return c.sampleResult(nil)
	}

	return Result{
		Target:   c.URL,
		Records:  result.Records,
		Strategy: result.Strategy,
		Source:   SourcePage,
	}
}

func (c *ListingCrawler) sampleResult(fetchErr error) Result {
	return Result{
		Target:   c.URL,
		Records:  SampleRecords(),
		Source:   SourceSample,
		FetchErr: fetchErr,
	}
}
