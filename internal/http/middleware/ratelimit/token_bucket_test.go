package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func allowed(l Limiter, key string) bool {
	ok, _ := l.Allow(key)
	return ok
}

func TestTokenBucket_BurstThenBlocksThenRefills(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(0, 0))
	l := NewTokenBucket(clk, Config{Rate: 1, Burst: 2})

	require.True(t, allowed(l, "actor:d1"))
	require.True(t, allowed(l, "actor:d1"))

	ok, wait := l.Allow("actor:d1")
	require.False(t, ok)
	require.Equal(t, time.Second, wait)

	clk.Add(500 * time.Millisecond)
	ok, wait = l.Allow("actor:d1")
	require.False(t, ok)
	require.Equal(t, 500*time.Millisecond, wait)

	clk.Add(500 * time.Millisecond)
	require.True(t, allowed(l, "actor:d1"))
	require.False(t, allowed(l, "actor:d1"))

	// длинная пауза не накапливает больше burst
	clk.Add(10 * time.Second)
	require.True(t, allowed(l, "actor:d1"))
	require.True(t, allowed(l, "actor:d1"))
	require.False(t, allowed(l, "actor:d1"))
}

func TestTokenBucket_IsPerKey(t *testing.T) {
	t.Parallel()

	l := NewTokenBucket(newFakeClock(time.Unix(0, 0)), Config{Rate: 1, Burst: 1})

	require.True(t, allowed(l, "actor:a"))
	require.False(t, allowed(l, "actor:a"))
	require.True(t, allowed(l, "ip:10.0.0.1"))
}

func TestTokenBucket_SweepRemovesIdleBuckets(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(0, 0))
	l := NewTokenBucket(clk, Config{Rate: 10, Burst: 1, TTL: 2 * time.Second})

	allowed(l, "A")
	allowed(l, "B")
	require.Len(t, l.buckets, 2)

	clk.Add(59 * time.Second)
	allowed(l, "B")
	require.Len(t, l.buckets, 2, "sweep must wait for the interval")

	clk.Add(2 * time.Second)
	allowed(l, "B")
	require.NotContains(t, l.buckets, "A")
	require.Contains(t, l.buckets, "B")
}

func TestTokenBucket_MaxBuckets(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(0, 0))
	l := NewTokenBucket(clk, Config{Rate: 1, Burst: 1, TTL: 5 * time.Second, MaxBuckets: 1})

	require.True(t, allowed(l, "A"))

	ok, wait := l.Allow("B")
	require.False(t, ok)
	require.Equal(t, time.Second, wait)

	// A простаивает дольше TTL, его место освобождается сразу
	clk.Add(6 * time.Second)
	require.True(t, allowed(l, "B"))
	require.NotContains(t, l.buckets, "A")
}

func TestNewTokenBucket_Defaults(t *testing.T) {
	t.Parallel()

	l := NewTokenBucket(nil, Config{Rate: -1, Burst: 0, MaxBuckets: -5})
	require.Equal(t, 1.0, l.cfg.Rate)
	require.Equal(t, 1, l.cfg.Burst)
	require.Zero(t, l.cfg.MaxBuckets)
	require.IsType(t, RealClock{}, l.clock)
}

func TestNopLimiter(t *testing.T) {
	t.Parallel()

	ok, wait := NopLimiter{}.Allow("anything")
	require.True(t, ok)
	require.Zero(t, wait)
}
