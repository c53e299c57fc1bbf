package fetch

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles outgoing fetches to stay polite against a host.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter uses 0 or negative limit for no rate limiting.
func NewLimiter(requestsPerSecond float64) *Limiter {
	if requestsPerSecond <= 0 {
		return &Limiter{
			limiter: rate.NewLimiter(rate.Inf, 1),
		}
	}

	// Burst of 1: the first fetch goes out immediately, subsequent fetches
	// wait out the configured rate.
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow is non-blocking and useful for checking throttling.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// SetLimit can be called at runtime.
func (l *Limiter) SetLimit(requestsPerSecond float64) {
	if requestsPerSecond <= 0 {
		l.limiter.SetLimit(rate.Inf)
	} else {
		l.limiter.SetLimit(rate.Limit(requestsPerSecond))
	}
}

func (l *Limiter) Limit() float64 {
	limit := l.limiter.Limit()
	if limit == rate.Inf {
		return 0 // no rate limiting
	}
	return float64(limit)
}
