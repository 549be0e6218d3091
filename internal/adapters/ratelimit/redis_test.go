package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisLimiter(t *testing.T, opts ...RedisOption) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisLimiter(rdb, opts...), mr
}

func TestRedisLimiterAdmitsUpToMax(t *testing.T) {
	l, _ := newTestRedisLimiter(t, WithRedisMaxRequests(5))
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		dec, err := l.Check(ctx, "client")
		if err != nil {
			t.Fatalf("unexpected error on check %d: %v", i, err)
		}
		if !dec.Allowed {
			t.Fatalf("check %d should be allowed", i)
		}
		if dec.Remaining != 5-i {
			t.Fatalf("check %d remaining = %d, want %d", i, dec.Remaining, 5-i)
		}
	}

	dec, err := l.Check(ctx, "client")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Allowed {
		t.Fatalf("6th check should be rejected")
	}
	if dec.Remaining != 0 {
		t.Fatalf("rejected remaining = %d, want 0", dec.Remaining)
	}
}

func TestRedisLimiterWindowExpiry(t *testing.T) {
	l, mr := newTestRedisLimiter(t,
		WithRedisMaxRequests(2),
		WithRedisWindow(time.Minute),
	)
	ctx := context.Background()

	l.Check(ctx, "client")
	l.Check(ctx, "client")
	if dec, _ := l.Check(ctx, "client"); dec.Allowed {
		t.Fatalf("quota should be exhausted")
	}

	mr.FastForward(61 * time.Second)

	dec, err := l.Check(ctx, "client")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dec.Allowed {
		t.Fatalf("fresh window should admit")
	}
	if dec.Remaining != 1 {
		t.Fatalf("fresh window remaining = %d, want 1", dec.Remaining)
	}
}

func TestRedisLimiterKeysAreIndependent(t *testing.T) {
	l, _ := newTestRedisLimiter(t, WithRedisMaxRequests(1))
	ctx := context.Background()

	if dec, _ := l.Check(ctx, "a"); !dec.Allowed {
		t.Fatalf("first check for a should be allowed")
	}
	if dec, _ := l.Check(ctx, "a"); dec.Allowed {
		t.Fatalf("second check for a should be rejected")
	}
	if dec, _ := l.Check(ctx, "b"); !dec.Allowed {
		t.Fatalf("first check for b should be allowed")
	}
}

func TestRedisLimiterReportsErrorWhenUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	l := NewRedisLimiter(rdb)

	mr.Close()

	if _, err := l.Check(context.Background(), "client"); err == nil {
		t.Fatalf("expected an error when redis is unreachable")
	}
}
