package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	// Test with default values
	config := LoadConfig()
	assert.Equal(t, []string{"https://www.olx.in/items/q-car-cover"}, config.TargetURLs)
	assert.Equal(t, "https://www.olx.in", config.SiteOrigin)
	assert.Equal(t, 15*time.Second, config.FetchTimeout)
	assert.Equal(t, "localhost:6379", config.RedisAddr)
	assert.Equal(t, 0, config.RedisDB)
	assert.Equal(t, 1, config.RedisStreamCount)
	assert.Equal(t, "localhost:11211", config.MemcacheAddr)
	assert.Equal(t, []string{"csv", "json", "txt"}, config.OutputFormats)
	assert.True(t, config.SampleOnEmpty)
	assert.True(t, config.RunOnce())
	assert.NoError(t, config.Validate())

	// Test with environment variables
	t.Setenv("TARGET_URLS", "https://www.olx.in/items/q-car-cover, https://www.olx.in/items/q-bike-cover")
	t.Setenv("REDIS_ADDR", "redis.example.com:6379")
	t.Setenv("REDIS_DB", "1")
	t.Setenv("MEMCACHE_ADDR", "memcache.example.com:11211")
	t.Setenv("CRAWL_INTERVAL_SECONDS", "30")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "5")
	t.Setenv("OUTPUT_FORMATS", "json")
	t.Setenv("SAMPLE_ON_EMPTY", "false")

	config = LoadConfig()
	assert.Len(t, config.TargetURLs, 2)
	assert.Equal(t, "https://www.olx.in/items/q-bike-cover", config.TargetURLs[1])
	assert.Equal(t, "redis.example.com:6379", config.RedisAddr)
	assert.Equal(t, 1, config.RedisDB)
	assert.Equal(t, "memcache.example.com:11211", config.MemcacheAddr)
	assert.Equal(t, 30*time.Second, config.CrawlInterval)
	assert.Equal(t, 5*time.Second, config.FetchTimeout)
	assert.Equal(t, []string{"json"}, config.OutputFormats)
	assert.False(t, config.SampleOnEmpty)
	assert.False(t, config.RunOnce())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid defaults", func(c *Config) {}, ""},
		{"no targets", func(c *Config) { c.TargetURLs = nil }, "at least one target URL"},
		{"relative target", func(c *Config) { c.TargetURLs = []string{"/items"} }, "invalid target URL"},
		{"bad origin", func(c *Config) { c.SiteOrigin = "olx" }, "invalid site origin"},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }, "fetch timeout"},
		{"zero rate", func(c *Config) { c.FetchRate = 0 }, "fetch rate"},
		{"bad proxy", func(c *Config) { c.ProxyURL = "::" }, "invalid proxy URL"},
		{"unknown format", func(c *Config) { c.OutputFormats = []string{"xml"} }, "unsupported output format"},
		{"no streams", func(c *Config) { c.PublishEnabled = true; c.RedisStreamCount = 0 }, "stream count"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := LoadConfig()
			tc.mutate(c)
			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a, ,b ,"))
	assert.Nil(t, SplitList(""))
}

func TestLoadRules(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		rules, err := LoadRules("")
		require.NoError(t, err)
		assert.Equal(t, DefaultRules(), rules)
	})

	t.Run("file overrides only listed keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		content := "class_selectors:\n  - \".listing-tile\"\nrelevance_keywords: [\"bike cover\"]\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		rules, err := LoadRules(path)
		require.NoError(t, err)
		assert.Equal(t, []string{".listing-tile"}, rules.ClassSelectors)
		assert.Equal(t, []string{"bike cover"}, rules.RelevanceKeywords)
		assert.Equal(t, DefaultRules().AttributeSelectors, rules.AttributeSelectors)
		assert.Equal(t, []string{"₹"}, rules.CurrencySymbols)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("class_selectors: [unclosed"), 0o644))

		_, err := LoadRules(path)
		assert.Error(t, err)
	})
}

func TestDefaultRulesKeepKeywordSetsSeparate(t *testing.T) {
	rules := DefaultRules()
	assert.NotEqual(t, rules.RelevanceKeywords, rules.CandidateKeywords)
	assert.NotEqual(t, rules.RelevanceKeywords, rules.PreFilterKeywords)
	assert.Len(t, rules.AttributeSelectors, 7)
	assert.Len(t, rules.ClassSelectors, 11)
	assert.Len(t, rules.StructuralSelectors, 4)
}
