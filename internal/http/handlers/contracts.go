package handlers

import (
	"context"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/geo"
	"ecodeli-dispatch/internal/service/assignment"
	"ecodeli-dispatch/internal/service/availability"
	"ecodeli-dispatch/internal/service/matching"
	"ecodeli-dispatch/internal/service/routes"
	"ecodeli-dispatch/internal/service/storage"
)

type availabilityUsecase interface {
	Create(ctx context.Context, a domain.Availability) (availability.Created, error)
	Get(ctx context.Context, id string) (*domain.Availability, error)
	ListOccurrences(ctx context.Context, id string) ([]domain.Occurrence, error)
	Regenerate(ctx context.Context, id string) (availability.Regenerated, error)
}

// NewAvailabilityUsecase wires an availability Service into an availabilityUsecase.
func NewAvailabilityUsecase(svc *availability.Service) availabilityUsecase {
	return svc
}

type routeUsecase interface {
	Create(ctx context.Context, r domain.PlannedRoute) (domain.PlannedRoute, error)
	Get(ctx context.Context, id string) (domain.PlannedRoute, error)
	ListByDeliverer(ctx context.Context, delivererID string) ([]domain.PlannedRoute, error)
}

// NewRouteUsecase wires a routes Service into a routeUsecase.
func NewRouteUsecase(svc *routes.Service) routeUsecase {
	return svc
}

type matchingUsecase interface {
	MatchRouteByID(ctx context.Context, routeID string) (*domain.PlannedRoute, []domain.RouteMatch, error)
	Search(ctx context.Context, f domain.AnnouncementFilter) ([]domain.ScoredAnnouncement, error)
}

// NewMatchingUsecase wires a matching Service into a matchingUsecase.
func NewMatchingUsecase(svc *matching.Service) matchingUsecase {
	return svc
}

type assignmentUsecase interface {
	Apply(ctx context.Context, delivererID, announcementID string, opts domain.ApplyOptions) (domain.Application, error)
	Resolve(ctx context.Context, applicationID string, target domain.ApplicationStatus, reviewer domain.Actor) (domain.ResolveResult, error)
}

// NewAssignmentUsecase wires an assignment Service into an assignmentUsecase.
func NewAssignmentUsecase(svc *assignment.Service) assignmentUsecase {
	return svc
}

type storageUsecase interface {
	Nearby(ctx context.Context, p geo.Point, maxKm float64) ([]domain.NearbyStorage, error)
}

// NewStorageUsecase wires a storage Service into a storageUsecase.
func NewStorageUsecase(svc *storage.Service) storageUsecase {
	return svc
}
