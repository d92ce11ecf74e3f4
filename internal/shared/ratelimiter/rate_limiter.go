// Package ratelimiter limits how often an operation may start.
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RateLimiter allows at most limit operations per interval window.
// It is safe for concurrent use.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int
	interval  time.Duration
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a RateLimiter. A limit below 1 is treated as 1.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit < 1 {
		limit = 1
	}
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// Wait blocks until another operation may start, or returns ctx.Err().
func (rl *RateLimiter) Wait(ctx context.Context) error {
	for {
		sleep, ok := rl.reserve(time.Now())
		if ok {
			return nil
		}
		slog.Debug("rate limit reached, waiting", "limit", rl.limit, "wait", sleep)

		t := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

// reserve takes a slot in the current window, or reports how long until the
// window resets.
func (rl *RateLimiter) reserve(now time.Time) (time.Duration, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Reset the count once the interval has passed.
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}
	if rl.count < rl.limit {
		rl.count++
		return 0, true
	}
	return rl.interval - now.Sub(rl.lastReset), false
}
