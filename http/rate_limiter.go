package http

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	idleClientTTL   = 1 * time.Hour
	cleanupInterval = 30 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps a token bucket per client: capacity requests in a burst,
// refilled continuously at capacity per window.
type RateLimiter struct {
	mu       sync.Mutex
	every    rate.Limit
	burst    int
	limiters map[string]*clientLimiter
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter starts a limiter that also evicts clients idle for an hour.
// Call Stop when done with it.
func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := newRateLimiter(capacity, window, time.Now)
	go rl.cleanupLoop()
	return rl
}

func newRateLimiter(capacity int, window time.Duration, now func() time.Time) *RateLimiter {
	if capacity < 1 {
		capacity = 1
	}
	return &RateLimiter{
		every:    rate.Every(window / time.Duration(capacity)),
		burst:    capacity,
		limiters: make(map[string]*clientLimiter),
		now:      now,
		stop:     make(chan struct{}),
	}
}

// Allow takes a token for client. When the bucket is empty it reports how
// long until the next token arrives; the rejected call consumes nothing.
func (r *RateLimiter) Allow(client string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	cl, ok := r.limiters[client]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(r.every, r.burst)}
		r.limiters[client] = cl
	}
	cl.lastSeen = now

	res := cl.limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, 0
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stop:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for client, cl := range r.limiters {
		if now.Sub(cl.lastSeen) > idleClientTTL {
			delete(r.limiters, client)
		}
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}
