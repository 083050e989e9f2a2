// Package routes manages deliverers' planned routes and reacts to their events
// by matching them against open delivery requests.
package routes

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/logx"
)

// Service - planned route management.
type Service struct {
	repo             routeRepository
	publisher        Publisher
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newID            func() string
}

// NewService creates a new routes Service. publisher may be nil.
func NewService(r routeRepository, p Publisher, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		publisher:        p,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            uuid.NewString,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Create stores a planned route and publishes a created event for matching.
// A failed publish is logged; the route stays created.
func (s *Service) Create(ctx context.Context, r domain.PlannedRoute) (domain.PlannedRoute, error) {
	r, err := Normalize(r, s.now())
	if err != nil {
		return domain.PlannedRoute{}, err
	}
	r.ID = s.newID()

	opCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.Create(opCtx, &r); err != nil {
		return domain.PlannedRoute{}, err
	}

	s.logger.Info("route created",
		logx.String("event", "route_created"),
		logx.String("route_id", r.ID),
		logx.String("deliverer_id", r.DelivererID),
	)
	s.publish(ctx, Event{
		RouteID:     r.ID,
		DelivererID: r.DelivererID,
		Type:        EventCreated,
		OccurredAt:  s.now(),
	})
	return r, nil
}

func (s *Service) publish(ctx context.Context, e Event) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.operationTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Warn("route event publish failed",
			logx.String("event", "route_publish_failed"),
			logx.String("route_id", e.RouteID),
			logx.Err(err),
		)
	}
}

// Get - get a planned route by id.
func (s *Service) Get(ctx context.Context, id string) (domain.PlannedRoute, error) {
	if strings.TrimSpace(id) == "" {
		return domain.PlannedRoute{}, apperr.Validation("route id is required")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.PlannedRoute{}, err
	}
	if r == nil {
		return domain.PlannedRoute{}, apperr.NotFound("route")
	}
	return *r, nil
}

// ListByDeliverer - list the planned routes of a deliverer.
func (s *Service) ListByDeliverer(ctx context.Context, delivererID string) ([]domain.PlannedRoute, error) {
	if strings.TrimSpace(delivererID) == "" {
		return nil, apperr.Validation("deliverer id is required")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListByDeliverer(ctx, delivererID)
}
