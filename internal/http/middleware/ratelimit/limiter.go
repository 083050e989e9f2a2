// Package ratelimit throttles callers with per-key token buckets.
package ratelimit

import "time"

// Limiter decides whether the caller behind key may proceed. A denied call
// also reports how long until the next token is available.
type Limiter interface {
	Allow(key string) (ok bool, wait time.Duration)
}

// Clock provides current time.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

// Now returns current time.
func (RealClock) Now() time.Time { return time.Now() }

// NopLimiter lets every call through.
type NopLimiter struct{}

// Allow always returns true.
func (NopLimiter) Allow(string) (bool, time.Duration) { return true, 0 }
