package routes

import (
	"context"
	"fmt"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/logx"
)

// NotificationRouteMatches is the notification type sent to deliverers.
const NotificationRouteMatches = "ROUTE_MATCHES"

// Processor processes planned route events
type Processor struct {
	routes   routeReader
	matcher  MatchPort
	notifier Notifier
	logger   logx.Logger
	factory  *actionFactory
}

// NewProcessor creates a new routes.Processor. notifier may be nil.
func NewProcessor(routes routeReader, matcher MatchPort, notifier Notifier, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		routes:   routes,
		matcher:  matcher,
		notifier: notifier,
		logger:   logger,
	}
	p.factory = newActionFactory(p.onMatch)
	return p
}

// Handle processes a single routes.Event. Unknown event types are logged and
// skipped.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Type)
	if !ok {
		p.logger.Warn("unknown route event type",
			logx.String("route_id", e.RouteID),
			logx.String("type", e.Type),
		)
		return nil
	}
	return fn(ctx, e)
}

// Publish handles e in-process. It lets the API run without a broker.
func (p *Processor) Publish(ctx context.Context, e Event) error {
	return p.Handle(ctx, e)
}

func (p *Processor) onMatch(ctx context.Context, e Event) error {
	route, err := p.routes.Get(ctx, e.RouteID)
	if err != nil {
		return err
	}
	if route == nil {
		p.logger.Warn("route event for unknown route", logx.String("route_id", e.RouteID))
		return nil
	}
	if !route.IsActive || route.Status == domain.RouteStatusCancelled || route.Status == domain.RouteStatusCompleted {
		return nil
	}

	matches, err := p.matcher.Match(ctx, *route)
	if err != nil {
		return err
	}
	if len(matches) == 0 || !route.NotifyOnMatch || p.notifier == nil {
		return nil
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	n := domain.Notification{
		UserID:  route.DelivererID,
		Title:   "Requests match your route",
		Message: fmt.Sprintf("%d delivery request(s) match your route on %s", len(matches), route.PlannedDate.Format(domain.DateLayout)),
		Type:    NotificationRouteMatches,
		Data: map[string]any{
			"route_id":    route.ID,
			"request_ids": ids,
		},
	}
	if err := p.notifier.Notify(ctx, n); err != nil {
		p.logger.Warn("route match notification failed",
			logx.String("event", "notification_failed"),
			logx.String("route_id", route.ID),
			logx.Err(err),
		)
		return nil
	}

	p.logger.Info("deliverer notified of route matches",
		logx.String("event", "route_matches_notified"),
		logx.String("route_id", route.ID),
		logx.Int("matches", len(matches)),
	)
	return nil
}
