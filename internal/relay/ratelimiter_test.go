// internal/relay/ratelimiter_test.go
package relay

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterRemaining(t *testing.T) {
	rl := NewRateLimiter(100, time.Hour)

	if got := rl.Remaining(); got != 100 {
		t.Fatalf("expected full allowance 100, got %d", got)
	}

	if !rl.Allow() {
		t.Fatal("expected first request to be allowed")
	}
	if got := rl.Remaining(); got != 99 {
		t.Errorf("expected 99 remaining after one request, got %d", got)
	}
}

func TestRateLimiterWait(t *testing.T) {
	rl := NewRateLimiter(1000, time.Hour)

	if err := rl.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected wait error: %v", err)
	}
	if got := rl.Remaining(); got != 999 {
		t.Errorf("expected wait to consume a slot, got %d remaining", got)
	}
}

func TestRateLimiterWaitCancelled(t *testing.T) {
	// 1 request per hour with burst 1: the second wait has to block.
	rl := NewRateLimiter(1, time.Hour)
	if err := rl.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error on first wait: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rl.Wait(ctx); err == nil {
		t.Error("expected error waiting on a cancelled context")
	}
}

func TestRateLimiterTimeUntilReset(t *testing.T) {
	rl := NewRateLimiter(10, time.Hour)

	if got := rl.TimeUntilReset(); got != 0 {
		t.Errorf("expected zero reset time before any requests, got %v", got)
	}

	rl.Allow()
	reset := rl.TimeUntilReset()
	if reset <= 0 || reset > time.Hour {
		t.Errorf("expected reset within the window, got %v", reset)
	}
}

func TestRateLimiterDefaults(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	if got := rl.Remaining(); got != DefaultWindowRequests {
		t.Errorf("expected default allowance %d, got %d", DefaultWindowRequests, got)
	}
}
