// Package ratelimit holds the request limiters used by the HTTP layer: a
// Redis fixed window shared by all instances and an in-process token bucket
// used when Redis is off or failing.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
