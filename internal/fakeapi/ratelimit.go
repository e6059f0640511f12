package fakeapi

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// bucket is a token bucket for a single client.
type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

// rateLimiter keeps one bucket per identity. Buckets idle for longer than
// expiration are dropped on the next sweep.
type rateLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	rate       float64
	capacity   float64
	expiration time.Duration
	lastSweep  time.Time
	now        func() time.Time
}

func newRateLimiter(rate, capacity float64, expiration time.Duration) *rateLimiter {
	return &rateLimiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		capacity:   capacity,
		expiration: expiration,
		now:        time.Now,
	}
}

func (rl *rateLimiter) get(identity string) *bucket {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > rl.expiration {
		for id, b := range rl.buckets {
			b.mu.Lock()
			idle := now.Sub(b.lastSeen)
			b.mu.Unlock()
			if idle > rl.expiration {
				delete(rl.buckets, id)
			}
		}
		rl.lastSweep = now
	}

	b, ok := rl.buckets[identity]
	if !ok {
		b = &bucket{tokens: rl.capacity, lastRefill: now}
		rl.buckets[identity] = b
	}
	return b
}

// Allow reports whether identity may make another request now.
func (rl *rateLimiter) Allow(identity string) bool {
	b := rl.get(identity)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := rl.now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * rl.rate
	if b.tokens > rl.capacity {
		b.tokens = rl.capacity
	}
	b.lastRefill = now
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// clientIP trusts RemoteAddr only; the fake backend never sits behind a proxy.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
