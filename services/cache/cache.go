package cache

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ErrCacheMiss is returned when a key is absent or expired
var ErrCacheMiss = errors.New("cache miss")

// maxKeyLength is the longest key memcache accepts
const maxKeyLength = 250

// CacheService represents a generic cache service
type CacheService interface {
	// Get retrieves a value from the cache
	Get(key string) ([]byte, error)

	// Set stores a value in the cache with an expiration time
	Set(key string, value []byte, expiration time.Duration) error

	// Delete removes a value from the cache
	Delete(key string) error
}

// Key builds a namespaced cache key from free-form parts such as URLs.
// Parts are joined with ':'; keys that would break memcache rules
// (too long, or containing whitespace or control characters) are
// replaced by a hash of their content.
func Key(namespace string, parts ...string) string {
	raw := strings.Join(append([]string{namespace}, parts...), ":")
	if len(raw) <= maxKeyLength && !strings.ContainsFunc(raw, isIllegalKeyRune) {
		return raw
	}
	return namespace + ":" + strconv.FormatUint(xxhash.Sum64String(raw), 16)
}

func isIllegalKeyRune(r rune) bool {
	return r <= ' ' || r == 0x7f
}
