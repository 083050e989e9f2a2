package ratelimit

import (
	"math"
	"sync"
	"time"
)

// minSweepInterval bounds how often idle buckets are scanned.
const minSweepInterval = time.Minute

// Config stores TokenBucket settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets older than this are dropped, 0 keeps them
	MaxBuckets int           // 0 means unbounded
}

// TokenBucket is a per-key token bucket limiter.
type TokenBucket struct {
	cfg   Config
	clock Clock

	mu        sync.Mutex
	buckets   map[string]*bucket
	nextSweep time.Time
}

type bucket struct {
	tokens float64
	seen   time.Time
}

// NewTokenBucket creates a limiter. Non-positive Rate and Burst fall back to 1.
func NewTokenBucket(clock Clock, cfg Config) *TokenBucket {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucket{
		cfg:     cfg,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// Allow takes one token from the bucket of key.
func (l *TokenBucket) Allow(key string) (bool, time.Duration) {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now, false)

	b, ok := l.buckets[key]
	if !ok {
		if l.full() {
			l.sweep(now, true)
			if l.full() {
				return false, time.Second
			}
		}
		b = &bucket{tokens: float64(l.cfg.Burst), seen: now}
		l.buckets[key] = b
	}

	b.refill(now, l.cfg.Rate, float64(l.cfg.Burst))
	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	missing := 1 - b.tokens
	return false, time.Duration(missing / l.cfg.Rate * float64(time.Second))
}

func (l *TokenBucket) full() bool {
	return l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets
}

// sweep drops idle buckets. Unless forced it runs at most once per interval.
func (l *TokenBucket) sweep(now time.Time, force bool) {
	if l.cfg.TTL <= 0 {
		return
	}
	if !force && now.Before(l.nextSweep) {
		return
	}
	interval := l.cfg.TTL / 2
	if interval < minSweepInterval {
		interval = minSweepInterval
	}
	l.nextSweep = now.Add(interval)

	for k, b := range l.buckets {
		if now.Sub(b.seen) > l.cfg.TTL {
			delete(l.buckets, k)
		}
	}
}

func (b *bucket) refill(now time.Time, rate, burst float64) {
	if dt := now.Sub(b.seen); dt > 0 {
		b.tokens = math.Min(burst, b.tokens+dt.Seconds()*rate)
	}
	b.seen = now
}
