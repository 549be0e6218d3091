package ports

import (
	"context"
	"time"
)

// RateDecision is the outcome of one quota check.
type RateDecision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Port: per-client request quota over a fixed window.
type RateLimiter interface {
	// Check records one attempt for clientKey and reports whether it is
	// admitted. Rejected attempts do not advance the window.
	Check(ctx context.Context, clientKey string) (RateDecision, error)
}
