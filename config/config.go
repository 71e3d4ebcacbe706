package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "sjsage522/olxworker/pkg/errors"
)

// Supported output formats
var supportedFormats = map[string]bool{"csv": true, "json": true, "txt": true}

// Config represents the application configuration
type Config struct {
	// Target pages
	TargetURLs []string
	SiteOrigin string

	// Fetch configuration
	FetchTimeout time.Duration
	FetchRate    float64
	ProxyURL     string
	BlockTime    time.Duration
	PageCacheTTL time.Duration

	// Memcache configuration
	CacheEnabled bool
	MemcacheAddr string

	// Redis configuration
	PublishEnabled       bool
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Output configuration
	OutputDir      string
	OutputBaseName string
	OutputFormats  []string
	SampleOnEmpty  bool

	// Worker configuration
	CrawlInterval time.Duration

	// RulesFile optionally overrides the built-in extraction rules
	RulesFile string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	return &Config{
		TargetURLs:           getEnvList("TARGET_URLS", "https://www.olx.in/items/q-car-cover"),
		SiteOrigin:           getEnv("SITE_ORIGIN", "https://www.olx.in"),
		FetchTimeout:         getEnvSeconds("FETCH_TIMEOUT_SECONDS", 15),
		FetchRate:            getEnvFloat("FETCH_RATE_PER_SECOND", 1),
		ProxyURL:             getEnv("FETCH_PROXY_URL", ""),
		BlockTime:            getEnvSeconds("BLOCK_TIME_SECONDS", 300),
		PageCacheTTL:         getEnvSeconds("PAGE_CACHE_SECONDS", 0),
		CacheEnabled:         getEnvBool("CACHE_ENABLED", false),
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", "localhost:11211"),
		PublishEnabled:       getEnvBool("PUBLISH_ENABLED", false),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              getEnvInt("REDIS_DB", 0),
		RedisStream:          getEnv("REDIS_STREAM", "listings"),
		RedisStreamCount:     getEnvInt("REDIS_STREAM_COUNT", 1),
		RedisStreamMaxLength: getEnvInt("REDIS_STREAM_MAX_LENGTH", 1000),
		OutputDir:            getEnv("OUTPUT_DIR", "."),
		OutputBaseName:       getEnv("OUTPUT_BASENAME", "car_covers"),
		OutputFormats:        getEnvList("OUTPUT_FORMATS", "csv,json,txt"),
		SampleOnEmpty:        getEnvBool("SAMPLE_ON_EMPTY", true),
		CrawlInterval:        getEnvSeconds("CRAWL_INTERVAL_SECONDS", 0),
		RulesFile:            getEnv("RULES_FILE", ""),
		Environment:          getEnv("SCRAPER_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for values the worker cannot run with
func (c *Config) Validate() error {
	if len(c.TargetURLs) == 0 {
		return apperrors.NewValidation("config", "at least one target URL is required")
	}
	for _, target := range c.TargetURLs {
		if u, err := url.Parse(target); err != nil || u.Host == "" {
			return apperrors.NewValidation("config", "invalid target URL: "+target)
		}
	}

	if u, err := url.Parse(c.SiteOrigin); err != nil || u.Scheme == "" || u.Host == "" {
		return apperrors.NewValidation("config", "invalid site origin: "+c.SiteOrigin)
	}

	if c.FetchTimeout <= 0 {
		return apperrors.NewValidation("config", "fetch timeout must be positive")
	}
	if c.FetchRate <= 0 {
		return apperrors.NewValidation("config", "fetch rate must be positive")
	}

	if c.ProxyURL != "" {
		if u, err := url.Parse(c.ProxyURL); err != nil || u.Host == "" {
			return apperrors.NewValidation("config", "invalid proxy URL: "+c.ProxyURL)
		}
	}

	for _, format := range c.OutputFormats {
		if !supportedFormats[format] {
			return apperrors.NewValidation("config", "unsupported output format: "+format)
		}
	}

	if c.PublishEnabled && c.RedisStreamCount < 1 {
		return apperrors.NewValidation("config", "redis stream count must be at least 1")
	}

	if c.CrawlInterval < 0 {
		return apperrors.NewValidation("config", "crawl interval must not be negative")
	}

	return nil
}

// RunOnce reports whether the worker should stop after a single cycle
func (c *Config) RunOnce() bool {
	return c.CrawlInterval == 0
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds)) * time.Second
}

// getEnvList splits a comma-separated variable, dropping blank entries
func getEnvList(key, defaultValue string) []string {
	return SplitList(getEnv(key, defaultValue))
}

// SplitList splits a comma-separated value into trimmed non-empty items
func SplitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
