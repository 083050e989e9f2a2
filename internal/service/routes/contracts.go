//go:generate mockgen -source=contracts.go -destination=routes_mocks_test.go -package=routes_test

package routes

import (
	"context"

	"ecodeli-dispatch/internal/domain"
)

type routeRepository interface {
	Create(ctx context.Context, route *domain.PlannedRoute) error
	Get(ctx context.Context, id string) (*domain.PlannedRoute, error)
	ListByDeliverer(ctx context.Context, delivererID string) ([]domain.PlannedRoute, error)
}

type routeReader interface {
	Get(ctx context.Context, id string) (*domain.PlannedRoute, error)
}

// Publisher hands route events over to the matching pipeline.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// MatchPort abstracts the matching service operation needed by Processor.
type MatchPort interface {
	Match(ctx context.Context, route domain.PlannedRoute) ([]domain.RouteMatch, error)
}

// Notifier delivers user notifications.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}
