package ratelimit

import (
	"context"
	"fmt"
	"time"

	"consignment-intake-service/internal/ports"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window quota tracker backed by Redis, for
// deployments where the quota must hold across instances.
//
// One pipeline per check: INCR the window counter, set its TTL only if it
// has none yet (first writer wins, so the window never slides), then read
// the remaining TTL for the reset timestamp. The counter is allowed to run
// past the limit on rejected checks; the window TTL is fixed by the first
// request, so the observable semantics match MemoryLimiter.
type RedisLimiter struct {
	rdb    *redis.Client
	prefix string
	window time.Duration
	max    int
}

type RedisOption func(*RedisLimiter)

func WithRedisWindow(d time.Duration) RedisOption {
	return func(l *RedisLimiter) { l.window = d }
}

func WithRedisMaxRequests(n int) RedisOption {
	return func(l *RedisLimiter) { l.max = n }
}

func WithRedisPrefix(prefix string) RedisOption {
	return func(l *RedisLimiter) { l.prefix = prefix }
}

func NewRedisLimiter(rdb *redis.Client, opts ...RedisOption) *RedisLimiter {
	l := &RedisLimiter{
		rdb:    rdb,
		prefix: "intake:ratelimit",
		window: DefaultWindow,
		max:    DefaultMaxRequests,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check implements ports.RateLimiter.
func (l *RedisLimiter) Check(ctx context.Context, clientKey string) (ports.RateDecision, error) {
	key := l.prefix + ":" + clientKey

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, l.window)
	pttl := pipe.PTTL(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return ports.RateDecision{}, fmt.Errorf("redis rate limiter: check %q: %w", clientKey, err)
	}

	count := int(incr.Val())
	resetAt := time.Now().Add(pttl.Val())

	if count > l.max {
		return ports.RateDecision{Allowed: false, Remaining: 0, ResetAt: resetAt}, nil
	}

	return ports.RateDecision{Allowed: true, Remaining: l.max - count, ResetAt: resetAt}, nil
}
