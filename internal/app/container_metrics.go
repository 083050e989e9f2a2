package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"ecodeli-dispatch/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	NotifyRetriesTotal     prometheus.Counter `name:"notify_retries_total"`
	Business               *metrics.Business
}

// register adds c to the default registry. A collector registered earlier
// under the same descriptor is reused.
func register[T prometheus.Collector](c T, name string) (T, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

func provideMetrics() (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceededTotal, err = register(metrics.NewRateLimitExceededTotal(), "rate_limit_exceeded_total"); err != nil {
		return metricsOut{}, err
	}
	if out.NotifyRetriesTotal, err = register(metrics.NewNotifyRetriesTotal(), "notify_retries_total"); err != nil {
		return metricsOut{}, err
	}

	b := metrics.NewBusiness()
	if b.OccurrencesGenerated, err = register(b.OccurrencesGenerated, "availability_occurrences_generated_total"); err != nil {
		return metricsOut{}, err
	}
	if b.ApplicationsSubmitted, err = register(b.ApplicationsSubmitted, "applications_submitted_total"); err != nil {
		return metricsOut{}, err
	}
	if b.Resolutions, err = register(b.Resolutions, "application_resolutions_total"); err != nil {
		return metricsOut{}, err
	}
	if b.RouteMatches, err = register(b.RouteMatches, "route_matches_count"); err != nil {
		return metricsOut{}, err
	}
	out.Business = b
	return out, nil
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, provideMetrics)
}
