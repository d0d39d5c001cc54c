// internal/relay/ratelimiter.go
package relay

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Default limits mirror the public relay's published allowance.
const (
	DefaultWindowRequests = 15000
	DefaultWindow         = time.Hour
)

// RateLimiter combines a token bucket for pacing with a sliding-window
// request counter for diagnostics. The window counter answers "how many
// requests remain this hour"; the bucket smooths the request rate so the
// allowance is not burned in one burst.
type RateLimiter struct {
	limiter *rate.Limiter

	mu          sync.Mutex
	window      time.Duration
	maxRequests int
	requests    []time.Time
}

// NewRateLimiter creates a limiter allowing maxRequests per window. The
// token bucket refill rate is derived from the same quota.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	if maxRequests <= 0 {
		maxRequests = DefaultWindowRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}

	perSecond := float64(maxRequests) / window.Seconds()
	burst := maxRequests / 100
	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{
		limiter:     rate.NewLimiter(rate.Limit(perSecond), burst),
		window:      window,
		maxRequests: maxRequests,
	}
}

// Wait blocks until a request slot is available or the context is done.
// The request is recorded on success.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if err := rl.limiter.Wait(ctx); err != nil {
		return err
	}
	rl.record(time.Now())
	return nil
}

// Allow reports whether a request may proceed right now, recording it if so.
func (rl *RateLimiter) Allow() bool {
	if !rl.limiter.Allow() {
		return false
	}
	rl.record(time.Now())
	return true
}

// Remaining returns how many requests are left in the current window.
func (rl *RateLimiter) Remaining() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.prune(time.Now())
	remaining := rl.maxRequests - len(rl.requests)
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// TimeUntilReset returns how long until the oldest recorded request ages
// out of the window, or zero when no requests are recorded.
func (rl *RateLimiter) TimeUntilReset() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.prune(now)
	if len(rl.requests) == 0 {
		return 0
	}
	reset := rl.requests[0].Add(rl.window).Sub(now)
	if reset < 0 {
		return 0
	}
	return reset
}

func (rl *RateLimiter) record(t time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.prune(t)
	rl.requests = append(rl.requests, t)
}

// prune drops timestamps that fell out of the window. Caller holds mu.
func (rl *RateLimiter) prune(now time.Time) {
	cutoff := now.Add(-rl.window)
	keep := rl.requests[:0]
	for _, t := range rl.requests {
		if t.After(cutoff) {
			keep = append(keep, t)
		}
	}
	rl.requests = keep
}
