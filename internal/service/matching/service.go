package matching

import (
	"context"
	"time"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/logx"
	"ecodeli-dispatch/internal/metrics"
)

// Service answers route matching and announcement search queries.
type Service struct {
	announcements    announcementRepository
	routes           routeRepository
	metrics          *metrics.Business
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates a new matching Service.
func NewService(
	announcements announcementRepository,
	routes routeRepository,
	m *metrics.Business,
	timeout time.Duration,
	logger logx.Logger,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		announcements:    announcements,
		routes:           routes,
		metrics:          m,
		operationTimeout: timeout,
		logger:           logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// MatchRouteByID loads a planned route and matches it against open requests.
func (s *Service) MatchRouteByID(ctx context.Context, routeID string) (*domain.PlannedRoute, []domain.RouteMatch, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	route, err := s.routes.Get(ctx, routeID)
	if err != nil {
		return nil, nil, err
	}
	if route == nil {
		return nil, nil, apperr.NotFound("route")
	}

	matches, err := s.match(ctx, *route)
	if err != nil {
		return nil, nil, err
	}
	return route, matches, nil
}

// Match matches route against the open requests in its date window.
func (s *Service) Match(ctx context.Context, route domain.PlannedRoute) ([]domain.RouteMatch, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.match(ctx, route)
}

func (s *Service) match(ctx context.Context, route domain.PlannedRoute) ([]domain.RouteMatch, error) {
	from, to := Window(route.PlannedDate)
	pool, err := s.announcements.ListOpenForDates(ctx, from, to)
	if err != nil {
		return nil, err
	}

	matches := MatchRoute(route, pool)
	s.metrics.ObserveRouteMatches(len(matches))
	s.logger.Debug("route matched",
		logx.String("event", "route_matched"),
		logx.String("route_id", route.ID),
		logx.Int("candidates", len(pool)),
		logx.Int("matches", len(matches)),
	)
	return matches, nil
}

// Search lists open requests for a deliverer browsing without a route.
func (s *Service) Search(ctx context.Context, f domain.AnnouncementFilter) ([]domain.ScoredAnnouncement, error) {
	f, err := ValidateFilter(f)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.announcements.SearchOpen(ctx, f)
	if err != nil {
		return nil, err
	}
	return Rank(rows, f), nil
}
