package ratelimiter

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/stretchr/testify/require"

	"openhours/internal/core/domain/logging"
	ratelimiter "openhours/internal/core/domain/rate_limiter"
)

func TestWindowKey(t *testing.T) {
	assert := require.New(t)
	now := time.Date(2022, time.June, 3, 10, 30, 15, 0, time.UTC)

	k, d := windowKey("evaluate::1.2.3.4", ratelimiter.Minute, now)
	assert.Equal("ratelimit::evaluate::1.2.3.4::m"+strconv.FormatInt(now.Unix()/60, 10), k)
	assert.Equal(time.Minute, d)

	next, _ := windowKey("evaluate::1.2.3.4", ratelimiter.Minute, now.Add(time.Minute))
	assert.NotEqual(k, next)

	k, d = windowKey("evaluate::1.2.3.4", ratelimiter.Hour, now)
	sameHour, _ := windowKey("evaluate::1.2.3.4", ratelimiter.Hour, now.Add(20*time.Minute))
	assert.Equal(k, sameHour)
	assert.Equal(time.Hour, d)
}

func TestRedisCheckLimit(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL is not set")
	}
	assert := require.New(t)
	opts, err := redis.ParseURL(url)
	assert.NoError(err)
	client := redis.NewClient(opts)
	defer client.Close()

	now := time.Now()
	limiter := NewRedis(client, logging.NewFakeLogger(), func() time.Time { return now })
	key := "test::" + strconv.FormatInt(now.UnixNano(), 10)
	limit := ratelimiter.Limit{Value: 2, Interval: ratelimiter.Minute}

	ctx := context.Background()
	assert.True(limiter.CheckLimit(ctx, key, limit).IsAllowed)
	assert.True(limiter.CheckLimit(ctx, key, limit).IsAllowed)
	assert.False(limiter.CheckLimit(ctx, key, limit).IsAllowed)
}
