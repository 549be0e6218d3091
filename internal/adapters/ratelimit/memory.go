package ratelimit

import (
	"context"
	"sync"
	"time"

	"consignment-intake-service/internal/ports"
)

const (
	// Default policy: 5 submissions per client per 15 minutes.
	DefaultWindow      = 15 * time.Minute
	DefaultMaxRequests = 5
)

type record struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a fixed-window quota tracker held in process memory.
// The quota is per-instance: in a multi-instance deployment use the Redis
// limiter instead.
type MemoryLimiter struct {
	mu      sync.Mutex
	records map[string]*record

	window time.Duration
	max    int
	now    func() time.Time
}

type MemoryOption func(*MemoryLimiter)

func WithWindow(d time.Duration) MemoryOption {
	return func(l *MemoryLimiter) { l.window = d }
}

func WithMaxRequests(n int) MemoryOption {
	return func(l *MemoryLimiter) { l.max = n }
}

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(l *MemoryLimiter) { l.now = now }
}

func NewMemoryLimiter(opts ...MemoryOption) *MemoryLimiter {
	l := &MemoryLimiter{
		records: make(map[string]*record),
		window:  DefaultWindow,
		max:     DefaultMaxRequests,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check implements ports.RateLimiter.
//
// Expired records are dropped on every call, including records for other
// keys, so memory stays bounded without a background sweep. Only allowed
// checks advance the count; a rejected check leaves the window untouched.
func (l *MemoryLimiter) Check(_ context.Context, clientKey string) (ports.RateDecision, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, rec := range l.records {
		if rec.resetAt.Before(now) {
			delete(l.records, key)
		}
	}

	rec, ok := l.records[clientKey]
	if !ok {
		resetAt := now.Add(l.window)
		l.records[clientKey] = &record{count: 1, resetAt: resetAt}
		return ports.RateDecision{Allowed: true, Remaining: l.max - 1, ResetAt: resetAt}, nil
	}

	if rec.count >= l.max {
		return ports.RateDecision{Allowed: false, Remaining: 0, ResetAt: rec.resetAt}, nil
	}

	rec.count++
	return ports.RateDecision{Allowed: true, Remaining: l.max - rec.count, ResetAt: rec.resetAt}, nil
}
