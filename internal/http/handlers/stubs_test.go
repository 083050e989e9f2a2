package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/geo"
	"ecodeli-dispatch/internal/http/middleware"
	"ecodeli-dispatch/internal/service/availability"
)

type stubAvailabilityUsecase struct {
	createFn     func(ctx context.Context, a domain.Availability) (availability.Created, error)
	getFn        func(ctx context.Context, id string) (*domain.Availability, error)
	listFn       func(ctx context.Context, id string) ([]domain.Occurrence, error)
	regenerateFn func(ctx context.Context, id string) (availability.Regenerated, error)
}

func (s *stubAvailabilityUsecase) Create(ctx context.Context, a domain.Availability) (availability.Created, error) {
	return s.createFn(ctx, a)
}

func (s *stubAvailabilityUsecase) Get(ctx context.Context, id string) (*domain.Availability, error) {
	return s.getFn(ctx, id)
}

func (s *stubAvailabilityUsecase) ListOccurrences(ctx context.Context, id string) ([]domain.Occurrence, error) {
	return s.listFn(ctx, id)
}

func (s *stubAvailabilityUsecase) Regenerate(ctx context.Context, id string) (availability.Regenerated, error) {
	return s.regenerateFn(ctx, id)
}

type stubRouteUsecase struct {
	createFn func(ctx context.Context, r domain.PlannedRoute) (domain.PlannedRoute, error)
	getFn    func(ctx context.Context, id string) (domain.PlannedRoute, error)
	listFn   func(ctx context.Context, delivererID string) ([]domain.PlannedRoute, error)
}

func (s *stubRouteUsecase) Create(ctx context.Context, r domain.PlannedRoute) (domain.PlannedRoute, error) {
	return s.createFn(ctx, r)
}

func (s *stubRouteUsecase) Get(ctx context.Context, id string) (domain.PlannedRoute, error) {
	return s.getFn(ctx, id)
}

func (s *stubRouteUsecase) ListByDeliverer(ctx context.Context, delivererID string) ([]domain.PlannedRoute, error) {
	return s.listFn(ctx, delivererID)
}

type stubMatchingUsecase struct {
	matchFn  func(ctx context.Context, routeID string) (*domain.PlannedRoute, []domain.RouteMatch, error)
	searchFn func(ctx context.Context, f domain.AnnouncementFilter) ([]domain.ScoredAnnouncement, error)
}

func (s *stubMatchingUsecase) MatchRouteByID(ctx context.Context, routeID string) (*domain.PlannedRoute, []domain.RouteMatch, error) {
	return s.matchFn(ctx, routeID)
}

func (s *stubMatchingUsecase) Search(ctx context.Context, f domain.AnnouncementFilter) ([]domain.ScoredAnnouncement, error) {
	return s.searchFn(ctx, f)
}

type stubAssignmentUsecase struct {
	applyFn   func(ctx context.Context, delivererID, announcementID string, opts domain.ApplyOptions) (domain.Application, error)
	resolveFn func(ctx context.Context, applicationID string, target domain.ApplicationStatus, reviewer domain.Actor) (domain.ResolveResult, error)
}

func (s *stubAssignmentUsecase) Apply(ctx context.Context, delivererID, announcementID string, opts domain.ApplyOptions) (domain.Application, error) {
	return s.applyFn(ctx, delivererID, announcementID, opts)
}

func (s *stubAssignmentUsecase) Resolve(ctx context.Context, applicationID string, target domain.ApplicationStatus, reviewer domain.Actor) (domain.ResolveResult, error) {
	return s.resolveFn(ctx, applicationID, target, reviewer)
}

type stubStorageUsecase struct {
	nearbyFn func(ctx context.Context, p geo.Point, maxKm float64) ([]domain.NearbyStorage, error)
}

func (s *stubStorageUsecase) Nearby(ctx context.Context, p geo.Point, maxKm float64) ([]domain.NearbyStorage, error) {
	return s.nearbyFn(ctx, p, maxKm)
}

type call struct {
	method string
	target string
	body   string
	actor  *domain.Actor
	params map[string]string
}

func serve(h http.HandlerFunc, c call) *httptest.ResponseRecorder {
	var req *http.Request
	if c.body != "" {
		req = httptest.NewRequest(c.method, c.target, strings.NewReader(c.body))
	} else {
		req = httptest.NewRequest(c.method, c.target, nil)
	}

	ctx := req.Context()
	if len(c.params) > 0 {
		rc := chi.NewRouteContext()
		for k, v := range c.params {
			rc.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rc)
	}
	if c.actor != nil {
		ctx = middleware.WithActor(ctx, *c.actor)
	}

	rr := httptest.NewRecorder()
	h(rr, req.WithContext(ctx))
	return rr
}

var (
	deliverer = &domain.Actor{ID: "del-1", Role: domain.RoleDeliverer}
	client    = &domain.Actor{ID: "client-1", Role: domain.RoleClient}
	admin     = &domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	provider  = &domain.Actor{ID: "prov-1", Role: domain.RoleProvider}
)
