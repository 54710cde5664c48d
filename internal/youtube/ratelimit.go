package youtube

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBackoff is how long calls are refused after the provider reports
// rate limiting or exhausted quota.
const DefaultBackoff = time.Minute

// RateLimitConfig holds the token bucket settings for provider calls.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
	// Backoff is the pause after a 429 or quota response.
	Backoff time.Duration
}

// DefaultRateLimit keeps well below the search endpoint's quota cost.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 5, BurstSize: 10, Backoff: DefaultBackoff}

// RateLimiter is a token bucket that also honours a provider backoff window.
// It never blocks: a refused call fails fast so the caller can fall back.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
	backoff time.Duration
	now     func() time.Time
}

// NewRateLimiter creates a limiter from cfg, filling zero fields from DefaultRateLimit.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRateLimit.RequestsPerSecond
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = DefaultRateLimit.BurstSize
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = DefaultRateLimit.Backoff
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
		backoff: cfg.Backoff,
		now:     time.Now,
	}
}

// Allow reports whether a call may be made right now.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	retryAt := r.retryAt
	now := r.now()
	r.mu.Unlock()

	if now.Before(retryAt) {
		return false
	}
	return r.limiter.AllowN(now, 1)
}

// RecordRateLimitError starts a backoff window.
func (r *RateLimiter) RecordRateLimitError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retryAt = r.now().Add(r.backoff)
}
