package publisher

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/redis/go-redis/v9"

	apperrors "sjsage522/olxworker/pkg/errors"
)

const (
	// listingField holds the JSON-encoded record in each stream entry
	listingField = "listing"
	// targetField holds the page the record was extracted from
	targetField = "target"
)

// RedisPublisher implements Publisher using Redis streams
type RedisPublisher struct {
	client          *redis.Client
	streamPrefix    string
	streamCount     int
	streamMaxLength int
	next            atomic.Uint64
}

// NewRedisPublisher creates a new Redis publisher
func NewRedisPublisher(addr string, db int, streamPrefix string, streamCount int, streamMaxLength int) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	if streamCount < 1 {
		streamCount = 1
	}

	return &RedisPublisher{
		client:          client,
		streamPrefix:    streamPrefix,
		streamCount:     streamCount,
		streamMaxLength: streamMaxLength,
	}
}

// Ping checks the Redis connection
func (p *RedisPublisher) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return apperrors.NewPublisher("redis", "ping failed", err)
	}
	return nil
}

// streamName spreads entries round-robin over streamCount streams,
// e.g. listings:0 ~ listings:9 for a count of 10
func (p *RedisPublisher) streamName() string {
	n := p.next.Add(1) - 1
	return p.streamPrefix + ":" + strconv.FormatUint(n%uint64(p.streamCount), 10)
}

// Publish appends a listing to one of the Redis streams
func (p *RedisPublisher) Publish(ctx context.Context, target string, message []byte) error {
	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.streamName(),
		Values: map[string]interface{}{
			listingField: message,
			targetField:  target,
		},
	}).Err()
	if err != nil {
		return apperrors.NewPublisher(target, "failed to publish listing", err)
	}
	return nil
}

// TrimStreams trims all streams to the configured maximum length
func (p *RedisPublisher) TrimStreams(ctx context.Context) error {
	pattern := p.streamPrefix + ":*"
	streams, err := p.client.Keys(ctx, pattern).Result()
	if err != nil {
		return apperrors.NewPublisher("redis", "failed to list streams", err)
	}

	for _, stream := range streams {
		if err := p.client.XTrimMaxLen(ctx, stream, int64(p.streamMaxLength)).Err(); err != nil {
			return apperrors.NewPublisher(stream, "failed to trim stream", err)
		}
	}

	return nil
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
