package publisher

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamNameRoundRobin(t *testing.T) {
	p := NewRedisPublisher("localhost:6379", 0, "listings", 3, 100)
	defer p.Close()

	names := []string{p.streamName(), p.streamName(), p.streamName(), p.streamName()}
	assert.Equal(t, []string{"listings:0", "listings:1", "listings:2", "listings:0"}, names)

	single := NewRedisPublisher("localhost:6379", 0, "listings", 0, 100)
	defer single.Close()
	assert.Equal(t, "listings:0", single.streamName())
	assert.Equal(t, "listings:0", single.streamName())
}

// This test requires a running Redis instance
// If Redis is not available, the test will be skipped
func TestRedisPublisher(t *testing.T) {
	ctx := context.Background()
	publisher := NewRedisPublisher("localhost:6379", 0, "test_listings", 1, 10)
	defer publisher.Close()

	if err := publisher.Ping(ctx); err != nil {
		t.Skip("Redis is not available, skipping test")
	}

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 0})
	defer client.Close()
	client.Del(ctx, "test_listings:0")

	err := publisher.Publish(ctx, "https://www.olx.in/items/q-car-cover", []byte(`{"title":"Car Cover"}`))
	require.NoError(t, err)

	entries, err := client.XRange(ctx, "test_listings:0", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, `{"title":"Car Cover"}`, entries[0].Values["listing"])
	assert.Equal(t, "https://www.olx.in/items/q-car-cover", entries[0].Values["target"])

	for i := 0; i < 20; i++ {
		require.NoError(t, publisher.Publish(ctx, "t", []byte("{}")))
	}
	require.NoError(t, publisher.TrimStreams(ctx))

	length, err := client.XLen(ctx, "test_listings:0").Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, length, int64(10))

	client.Del(ctx, "test_listings:0")
}
