package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"ecodeli-dispatch/internal/config"
	"ecodeli-dispatch/internal/http/middleware/ratelimit"
	"ecodeli-dispatch/internal/logx"
)

// newRateLimitClock is a separate provider so tests can swap the clock.
func newRateLimitClock() ratelimit.Clock { return ratelimit.RealClock{} }

// newRateLimiter returns a token bucket keyed by actor or IP, or NopLimiter
// when limiting is switched off.
func newRateLimiter(cfg *config.Config, clock ratelimit.Clock, logger logx.Logger) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	logger.Info("http rate limiting enabled",
		logx.Float64("rate", rl.Rate),
		logx.Int("burst", rl.Burst),
		logx.Duration("bucket_ttl", rl.TTL),
		logx.Int("max_buckets", rl.MaxBuckets),
	)
	return ratelimit.NewTokenBucket(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

type rateLimitIn struct {
	dig.In

	Config  *config.Config
	Logger  logx.Logger
	Limiter ratelimit.Limiter
	Denied  prometheus.Counter `name:"rate_limit_exceeded_total"`
}

// newRateLimitMiddleware yields nil when limiting is off and the router
// leaves it out of the chain.
func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	if !in.Config.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(in.Logger.With(logx.String("component", "ratelimit")), in.Denied, in.Limiter)
}
