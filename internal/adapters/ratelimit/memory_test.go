package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryLimiterAdmitsUpToMax(t *testing.T) {
	l := NewMemoryLimiter(WithMaxRequests(5))
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

func TestMemoryLimiterRejectionKeepsResetAt(t *testing.T) {
	l := NewMemoryLimiter(WithMaxRequests(1))
	ctx := context.Background()

	first, _ := l.Check(ctx, "client")
	rejected, _ := l.Check(ctx, "client")

	if rejected.Allowed {
		t.Fatalf("second check should be rejected")
	}
	if !rejected.ResetAt.Equal(first.ResetAt) {
		t.Fatalf("rejection moved ResetAt: %v -> %v", first.ResetAt, rejected.ResetAt)
	}
}

func TestMemoryLimiterWindowExpiryStartsFreshWindow(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(
		WithMaxRequests(5),
		WithWindow(15*time.Minute),
		WithClock(func() time.Time { return now }),
	)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		l.Check(ctx, "client")
	}
	if dec, _ := l.Check(ctx, "client"); dec.Allowed {
		t.Fatalf("quota should be exhausted before rollover")
	}

	now = now.Add(15*time.Minute + time.Second)

	dec, err := l.Check(ctx, "client")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dec.Allowed {
		t.Fatalf("first check of a fresh window should be allowed")
	}
	if dec.Remaining != 4 {
		t.Fatalf("fresh window remaining = %d, want 4", dec.Remaining)
	}
	if !dec.ResetAt.Equal(now.Add(15 * time.Minute)) {
		t.Fatalf("fresh window ResetAt = %v, want %v", dec.ResetAt, now.Add(15*time.Minute))
	}
}

func TestMemoryLimiterDropsExpiredRecordsForOtherKeys(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(WithClock(func() time.Time { return now }))
	ctx := context.Background()

	l.Check(ctx, "a")
	l.Check(ctx, "b")

	now = now.Add(16 * time.Minute)
	l.Check(ctx, "c")

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.records) != 1 {
		t.Fatalf("expected only the live record to remain, got %d", len(l.records))
	}
	if _, ok := l.records["c"]; !ok {
		t.Fatalf("live record for c missing")
	}
}

func TestMemoryLimiterNoOverAdmissionUnderConcurrency(t *testing.T) {
	l := NewMemoryLimiter(WithMaxRequests(5))
	ctx := context.Background()

	const n = 40
	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dec, err := l.Check(ctx, "client")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if dec.Allowed {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if admitted != 5 {
		t.Fatalf("admitted = %d, want exactly 5", admitted)
	}
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(WithMaxRequests(1))
	ctx := context.Background()

	if dec, _ := l.Check(ctx, "a"); !dec.Allowed {
		t.Fatalf("first check for a should be allowed")
	}
	if dec, _ := l.Check(ctx, "b"); !dec.Allowed {
		t.Fatalf("first check for b should be allowed")
	}
	if dec, _ := l.Check(ctx, "a"); dec.Allowed {
		t.Fatalf("second check for a should be rejected")
	}
}
