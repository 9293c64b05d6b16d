package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "vvquest:ratelimit"

// RedisLimiter is a fixed one-minute window shared by every API replica.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, requestsPerMinute int) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(requestsPerMinute),
		window: time.Minute,
		now:    time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := l.now()
	slot := now.Truncate(l.window)
	redisKey := fmt.Sprintf("%s:%s:%d", keyPrefix, key, slot.Unix())

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, l.window+time.Second)
		return nil
	})
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit check failed: %w", err)
	}

	if incr.Val() <= l.limit {
		return Decision{Allowed: true}, nil
	}

	return Decision{Allowed: false, RetryAfter: slot.Add(l.window).Sub(now)}, nil
}
