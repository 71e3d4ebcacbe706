package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrapeErrorMessage(t *testing.T) {
	cause := stderrors.New("connection refused")

	err := NewNetwork("https://www.olx.in/items/q-car-cover", "failed to fetch URL", cause)
	assert.Equal(t, "[network] https://www.olx.in/items/q-car-cover: failed to fetch URL - connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	err = NewValidation("config", "no target URLs")
	assert.Equal(t, "[validation] config: no target URLs", err.Error())
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, NewNetwork("a", "b", nil).IsRetryable())
	assert.False(t, NewRateLimit("a", "60").IsRetryable())
	assert.False(t, NewParsing("a", "b", nil).IsRetryable())
	assert.False(t, NewOutput("a", "b", nil).IsRetryable())
}

func TestIsRetrievalFailure(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"network", NewNetwork("a", "b", nil), true},
		{"rate limit", NewRateLimit("a", ""), true},
		{"parsing", NewParsing("a", "b", nil), true},
		{"wrapped network", fmt.Errorf("crawl: %w", NewNetwork("a", "b", nil)), true},
		{"publisher", NewPublisher("a", "b", nil), false},
		{"plain error", stderrors.New("plain"), false},
		{"nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsRetrievalFailure(tc.err))
		})
	}
}

func TestNewRateLimitMessage(t *testing.T) {
	assert.Equal(t, "rate limited; retry after 60", NewRateLimit("olx", "60").Message)
	assert.Equal(t, "rate limited", NewRateLimit("olx", "").Message)
	assert.True(t, IsType(NewRateLimit("olx", ""), ErrorTypeRateLimit))
}
