package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, window time.Duration, max int64) *RateLimiter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimiter(client, window, max)
}

func TestRateLimiter_AllowsUpToMax(t *testing.T) {
	limiter := newTestLimiter(t, time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("request %d should be allowed", i)
		}
	}

	ok, err := limiter.Allow(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("allow over max: %v", err)
	}
	if ok {
		t.Fatalf("request over max should be rejected")
	}
}

func TestRateLimiter_SubSecondWindowClamped(t *testing.T) {
	limiter := newTestLimiter(t, 0, 2)
	ctx := context.Background()

	// A zero (or sub-second) window must not divide by zero when keying
	// the window; it is clamped to one second.
	if limiter.window != time.Second {
		t.Fatalf("expected window clamped to 1s, got %v", limiter.window)
	}
	for i := 0; i < 2; i++ {
		if ok, err := limiter.Allow(ctx, "10.0.0.1"); err != nil || !ok {
			t.Fatalf("request %d: ok=%v err=%v", i, ok, err)
		}
	}
	if ok, _ := limiter.Allow(ctx, "10.0.0.1"); ok {
		t.Fatalf("request over max should be rejected")
	}
}

func TestRateLimiter_IndependentClients(t *testing.T) {
	limiter := newTestLimiter(t, time.Minute, 1)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "10.0.0.1"); !ok {
		t.Fatalf("first client should be allowed")
	}
	if ok, _ := limiter.Allow(ctx, "10.0.0.2"); !ok {
		t.Fatalf("second client should not share the first client's counter")
	}
	if ok, _ := limiter.Allow(ctx, "10.0.0.1"); ok {
		t.Fatalf("first client should now be over its limit")
	}
}
