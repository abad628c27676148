package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_AllowsBurstThenBlocks(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newRateLimiter(3, time.Minute, func() time.Time { return now })

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		assert.True(t, ok, "request %d", i+1)
	}

	ok, retryAfter := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.InDelta(t, float64(20*time.Second), float64(retryAfter), float64(time.Millisecond))

	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok, "other clients have their own bucket")
}

func TestRateLimiter_RefillsContinuously(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newRateLimiter(3, time.Minute, func() time.Time { return now })

	for i := 0; i < 3; i++ {
		rl.Allow("10.0.0.1")
	}

	// One token every 20s; rejected calls do not push the refill back.
	now = now.Add(10 * time.Second)
	ok, retryAfter := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.InDelta(t, float64(10*time.Second), float64(retryAfter), float64(time.Millisecond))

	now = now.Add(11 * time.Second)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)

	ok, _ = rl.Allow("10.0.0.1")
	assert.False(t, ok)
}

func TestRateLimiter_SingleRequestPerWindow(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newRateLimiter(1, time.Minute, func() time.Time { return now })

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.False(t, ok)

	now = now.Add(time.Minute)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := newRateLimiter(1, time.Minute, func() time.Time { return now })

	rl.Allow("10.0.0.1")
	now = now.Add(30 * time.Minute)
	rl.Allow("10.0.0.2")
	now = now.Add(45 * time.Minute)
	rl.cleanup()

	assert.NotContains(t, rl.limiters, "10.0.0.1")
	assert.Contains(t, rl.limiters, "10.0.0.2")
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
