package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiterWithConfig(client, maxAttempts, window), mr
}

func TestRateLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("should allow requests under the limit", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 3, time.Minute)

		for i := 0; i < 3; i++ {
			if !limiter.allow(ctx, "10.0.0.1") {
				t.Fatalf("request %d should be allowed", i+1)
			}
		}
	})

	t.Run("should block requests over the limit", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 2, time.Minute)

		limiter.allow(ctx, "10.0.0.2")
		limiter.allow(ctx, "10.0.0.2")

		if limiter.allow(ctx, "10.0.0.2") {
			t.Error("third request should be blocked")
		}
	})

	t.Run("should track keys independently", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1, time.Minute)

		limiter.allow(ctx, "10.0.0.3")

		if !limiter.allow(ctx, "10.0.0.4") {
			t.Error("a different client should not share the window")
		}
	})

	t.Run("should reset after the window expires", func(t *testing.T) {
		limiter, mr := newTestLimiter(t, 1, time.Minute)

		limiter.allow(ctx, "10.0.0.5")
		if limiter.allow(ctx, "10.0.0.5") {
			t.Fatal("second request should be blocked")
		}

		mr.FastForward(2 * time.Minute)

		if !limiter.allow(ctx, "10.0.0.5") {
			t.Error("request after window expiry should be allowed")
		}
	})

	t.Run("should clear state on reset", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1, time.Minute)

		limiter.allow(ctx, "10.0.0.6")

		if err := limiter.Reset(ctx); err != nil {
			t.Fatalf("reset failed: %v", err)
		}

		if !limiter.allow(ctx, "10.0.0.6") {
			t.Error("request after reset should be allowed")
		}
	})
}
