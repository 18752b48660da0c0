package middleware

import (
	"sync"
	"time"
)

const (
	idleBucketTTL   = 1 * time.Hour
	cleanupInterval = 30 * time.Minute
)

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a fixed-window token bucket per client key. The whole bucket
// refills once a window has passed since the last refill.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	window      time.Duration
	clients     map[string]*clientBucket
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

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
		capacity:    capacity,
		window:      window,
		clients:     make(map[string]*clientBucket),
		now:         now,
		stopCleanup: make(chan struct{}),
	}
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > idleBucketTTL {
			delete(r.clients, key)
		}
	}
}

func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, ok := r.clients[key]
	if !ok {
		r.clients[key] = &clientBucket{tokens: r.capacity - 1, lastRefill: now}
		return true
	}

	if now.Sub(bucket.lastRefill) >= r.window {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}
	if bucket.tokens <= 0 {
		return false
	}
	bucket.tokens--
	return true
}
