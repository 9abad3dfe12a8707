package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window limiter that shares quota across instances.
// Keys are INCR'd and given the window TTL on first increment, so the window
// anchors to the first request exactly like MemoryLimiter. Redis failures
// fail open: availability of the public endpoints outranks strict quota
// enforcement when the backend is down.
type RedisLimiter struct {
	client *redis.Client
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

var _ Limiter = (*RedisLimiter)(nil)

func (l *RedisLimiter) Check(clientID string, config Config, now time.Time) Result {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := "ratelimit:" + config.Prefix + ":" + clientID

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, config.Window)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{Allowed: true, Remaining: config.Limit - 1, ResetAt: now.Add(config.Window)}
	}

	resetAt := now.Add(config.Window)
	if d := ttl.Val(); d > 0 {
		resetAt = now.Add(d)
	}

	count := incr.Val()
	if count > int64(config.Limit) {
		return Result{Allowed: false, Remaining: 0, ResetAt: resetAt}
	}

	remaining := config.Limit - int(count)
	return Result{Allowed: true, Remaining: remaining, ResetAt: resetAt}
}
