package crawler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"sjsage522/olxworker/helpers"
	"sjsage522/olxworker/logger"
	apperrors "sjsage522/olxworker/pkg/errors"
	"sjsage522/olxworker/services/cache"
)

// BaseCrawler provides page retrieval shared by all crawlers
type BaseCrawler struct {
	URL       string
	CacheSvc  cache.CacheService
	BlockTime time.Duration
	PageTTL   time.Duration
	Client    *http.Client
	Limiter   *rate.Limiter
}

func (c *BaseCrawler) blockKey() string {
	return cache.Key("block", c.URL)
}

func (c *BaseCrawler) pageKey() string {
	return cache.Key("page", c.URL)
}

// fetchWithCache fetches the page honoring rate-limit blocks and the page cache
func (c *BaseCrawler) fetchWithCache(ctx context.Context) (io.Reader, error) {
	// Check if the crawler is rate limited
	if c.CacheSvc != nil {
		if remaining, err := c.CacheSvc.Get(c.blockKey()); err == nil {
			return nil, apperrors.NewRateLimit(c.URL, string(remaining)+"s")
		}

		if c.PageTTL > 0 {
			if page, err := c.CacheSvc.Get(c.pageKey()); err == nil {
				return bytes.NewReader(page), nil
			}
		}
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, apperrors.NewNetwork(c.URL, "fetch limiter", err)
		}
	}

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	body, err := helpers.FetchPage(ctx, client, c.URL)
	if err != nil {
		if c.CacheSvc != nil && c.BlockTime > 0 && apperrors.IsType(err, apperrors.ErrorTypeRateLimit) {
			seconds := strconv.Itoa(int(c.BlockTime / time.Second))
			if setErr := c.CacheSvc.Set(c.blockKey(), []byte(seconds), c.BlockTime); setErr != nil {
				logger.ForCache().Warn().Err(apperrors.NewCache(c.URL, "failed to record rate-limit block", setErr)).Msg("Rate-limit block not recorded")
			}
		}
		return nil, err
	}

	if c.CacheSvc == nil || c.PageTTL <= 0 {
		return body, nil
	}

	page, err := io.ReadAll(body)
	if err != nil {
		return nil, apperrors.NewNetwork(c.URL, "failed to read page", err)
	}
	if err := c.CacheSvc.Set(c.pageKey(), page, c.PageTTL); err != nil {
		logger.ForCache().Warn().Err(apperrors.NewCache(c.URL, "failed to cache page", err)).Msg("Page cache unavailable")
	}
	return bytes.NewReader(page), nil
}

// createDocument creates a goquery document from a reader
func (c *BaseCrawler) createDocument(reader io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, apperrors.NewParsing(c.URL, "failed to parse HTML", err)
	}
	return doc, nil
}
