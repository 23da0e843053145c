package statusstore

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/stretchr/testify/require"

	c "openhours/internal/core/domain/common"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/place"
)

func TestDecodeStatus(t *testing.T) {
	assert := require.New(t)

	status, err := decodeStatus(redis.NewStringResult("", redis.Nil))
	assert.NoError(err)
	assert.False(status.IsPresent)

	status, err = decodeStatus(redis.NewStringResult("closed", nil))
	assert.NoError(err)
	assert.Equal(c.Some(hours.Closed), status)

	_, err = decodeStatus(redis.NewStringResult("ajar", nil))
	assert.Error(err)

	boom := errors.New("boom")
	_, err = decodeStatus(redis.NewStringResult("", boom))
	assert.ErrorIs(err, boom)
}

func TestRedisSwap(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL is not set")
	}
	assert := require.New(t)
	opts, err := redis.ParseURL(url)
	assert.NoError(err)
	client := redis.NewClient(opts)
	defer client.Close()

	ctx := context.Background()
	id := place.ID(time.Now().UnixNano())
	defer client.Del(ctx, key(id))
	store := NewRedis(client, time.Minute)

	previous, err := store.Swap(ctx, id, hours.Open)
	assert.NoError(err)
	assert.False(previous.IsPresent)

	previous, err = store.Swap(ctx, id, hours.Closed)
	assert.NoError(err)
	assert.Equal(c.Some(hours.Open), previous)
}
