package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewNotifyRetriesTotal returns a Prometheus counter for the number of notification publish retries
func NewNotifyRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "notify_retries_total",
		Help: "Total number of retry attempts performed when publishing notifications",
	})
}

// Business groups the dispatch domain counters. A nil *Business records nothing.
type Business struct {
	OccurrencesGenerated  prometheus.Counter
	ApplicationsSubmitted prometheus.Counter
	Resolutions           *prometheus.CounterVec
	RouteMatches          prometheus.Histogram
}

// NewBusiness creates unregistered business metrics.
func NewBusiness() *Business {
	return &Business{
		OccurrencesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "availability_occurrences_generated_total",
			Help: "Occurrences inserted by recurrence expansion",
		}),
		ApplicationsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "applications_submitted_total",
			Help: "Applications created by deliverers",
		}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "application_resolutions_total",
			Help: "Application reviews by outcome",
		}, []string{"outcome"}),
		RouteMatches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "route_matches_count",
			Help:    "Number of open requests matched per planned route",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		}),
	}
}

// Collectors returns every collector for registration.
func (b *Business) Collectors() []prometheus.Collector {
	return []prometheus.Collector{b.OccurrencesGenerated, b.ApplicationsSubmitted, b.Resolutions, b.RouteMatches}
}

// AddOccurrences counts inserted occurrences.
func (b *Business) AddOccurrences(n int64) {
	if b == nil || n <= 0 {
		return
	}
	b.OccurrencesGenerated.Add(float64(n))
}

// IncApplications counts a submitted application.
func (b *Business) IncApplications() {
	if b == nil {
		return
	}
	b.ApplicationsSubmitted.Inc()
}

// IncResolution counts a review with the given outcome (accepted, rejected, conflict, error).
func (b *Business) IncResolution(outcome string) {
	if b == nil {
		return
	}
	b.Resolutions.WithLabelValues(outcome).Inc()
}

// ObserveRouteMatches records how many requests matched a route.
func (b *Business) ObserveRouteMatches(n int) {
	if b == nil {
		return
	}
	b.RouteMatches.Observe(float64(n))
}
