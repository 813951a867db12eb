package infrastructure

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles an operation per key (here: login attempts per
// username). Limits come from RATE_LIMIT_WINDOW / RATE_LIMIT_MAX_REQUESTS
// when set.
type RateLimiter struct {
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	mutex    sync.Mutex
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rateLimitWindow := GetEnvAsDuration("RATE_LIMIT_WINDOW", window)
	rateLimitMaxRequests := GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", limit)
	if rateLimitMaxRequests < 1 {
		rateLimitMaxRequests = 1
	}

	rl := &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Every(rateLimitWindow / time.Duration(rateLimitMaxRequests)),
		burst:    rateLimitMaxRequests,
	}

	go rl.cleanupStaleEntries()
	return rl
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	entry, exists := rl.limiters[key]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter.Allow()
}

func (rl *RateLimiter) cleanupStaleEntries() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-1 * time.Hour)

		rl.mutex.Lock()
		for key, entry := range rl.limiters {
			if entry.lastSeen.Before(cutoff) {
				delete(rl.limiters, key)
			}
		}
		rl.mutex.Unlock()
	}
}
