package crawler

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"golang.org/x/time/rate"

	"sjsage522/olxworker/config"
	"sjsage522/olxworker/helpers"
	"sjsage522/olxworker/logger"
	apperrors "sjsage522/olxworker/pkg/errors"
	"sjsage522/olxworker/services/cache"
)

// CreateCrawlers creates one listing crawler per configured target page.
// All crawlers share one HTTP client and one fetch limiter.
func CreateCrawlers(cfg *config.Config, rules config.Rules, cacheSvc cache.CacheService) ([]Crawler, error) {
	client, err := helpers.NewClient(cfg.FetchTimeout, cfg.ProxyURL)
	if err != nil {
		return nil, apperrors.NewConfiguration("failed to create HTTP client", err)
	}

	var limiter *rate.Limiter
	if cfg.FetchRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.FetchRate), 1)
	}

	seen := make(map[string]int)
	crawlers := make([]Crawler, 0, len(cfg.TargetURLs))
	for _, target := range cfg.TargetURLs {
		name := crawlerName(target)
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}

		c := NewListingCrawler(CrawlerConfig{
			URL:           target,
			Name:          name,
			Origin:        cfg.SiteOrigin,
			Rules:         rules,
			BlockTime:     cfg.BlockTime,
			PageTTL:       cfg.PageCacheTTL,
			SampleOnEmpty: cfg.SampleOnEmpty,
		}, cacheSvc)
		c.Client = client
		c.Limiter = limiter

		logger.ForCrawler(target).Debug().Str("name", name).Msg("Crawler created")
		crawlers = append(crawlers, c)
	}

	return crawlers, nil
}

// crawlerName derives a file-safe name from the last path segment of the URL
func crawlerName(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		return "listings"
	}

	segment := path.Base(strings.TrimRight(u.Path, "/"))
	if segment == "." || segment == "/" || segment == "" {
		segment = u.Hostname()
	}

	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, segment)
	if name == "" {
		return "listings"
	}
	return name
}
