package statusstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"

	c "openhours/internal/core/domain/common"
	e "openhours/internal/core/domain/errors"
	"openhours/internal/core/domain/hours"
	"openhours/internal/core/domain/place"
)

const keyPrefix = "place-status::"

// Redis keeps the last status of every place under its own key. Keys
// expire after ttl so that deleted places do not linger, ttl should be
// well above the tracking period.
type Redis struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedis(redisClient *redis.Client, ttl time.Duration) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	return &Redis{redisClient: redisClient, ttl: ttl}
}

func key(id place.ID) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}

func (s *Redis) Swap(ctx context.Context, id place.ID, status hours.RuleStatus) (c.Optional[hours.RuleStatus], error) {
	k := key(id)
	var getSet *redis.StringCmd
	_, err := s.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		getSet = pipe.GetSet(ctx, k, status.String())
		if s.ttl > 0 {
			pipe.Expire(ctx, k, s.ttl)
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return c.Optional[hours.RuleStatus]{}, fmt.Errorf("could not swap status of place %d: %w", id, err)
	}
	return decodeStatus(getSet)
}

func decodeStatus(cmd *redis.StringCmd) (c.Optional[hours.RuleStatus], error) {
	raw, err := cmd.Result()
	if errors.Is(err, redis.Nil) {
		return c.Optional[hours.RuleStatus]{}, nil
	}
	if err != nil {
		return c.Optional[hours.RuleStatus]{}, err
	}
	status, ok := hours.ParseRuleStatus(raw)
	if !ok {
		return c.Optional[hours.RuleStatus]{}, fmt.Errorf("invalid stored status %q", raw)
	}
	return c.Some(status), nil
}
