package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	sweepInterval = time.Minute
	idleTTL       = 3 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// TokenBucketLimiter keeps one token bucket per key in memory. Idle keys
// are swept on the next call after sweepInterval.
type TokenBucketLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rate      rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func NewTokenBucketLimiter(rps float64, burst int) *TokenBucketLimiter {
	if burst < 1 {
		burst = 1
	}
	return &TokenBucketLimiter{
		visitors:  make(map[string]*visitor),
		rate:      rate.Limit(rps),
		burst:     burst,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *TokenBucketLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := l.now()

	l.mu.Lock()
	l.sweep(now)
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	l.mu.Unlock()

	if v.limiter.AllowN(now, 1) {
		return Decision{
			Allowed:   true,
			Remaining: int(math.Max(0, math.Floor(v.limiter.TokensAt(now)))),
		}, nil
	}

	retry := time.Second
	if l.rate > 0 {
		retry = time.Duration(float64(time.Second) / float64(l.rate))
	}
	return Decision{Allowed: false, RetryAfter: retry}, nil
}

func (l *TokenBucketLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < sweepInterval {
		return
	}
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > idleTTL {
			delete(l.visitors, key)
		}
	}
	l.lastSweep = now
}

// Len reports how many keys are tracked.
func (l *TokenBucketLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}
