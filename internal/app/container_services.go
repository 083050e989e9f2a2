package app

import (
	"time"

	"go.uber.org/dig"

	"ecodeli-dispatch/internal/cache"
	"ecodeli-dispatch/internal/config"
	"ecodeli-dispatch/internal/logx"
	"ecodeli-dispatch/internal/metrics"
	"ecodeli-dispatch/internal/repository"
	"ecodeli-dispatch/internal/service/assignment"
	"ecodeli-dispatch/internal/service/availability"
	"ecodeli-dispatch/internal/service/matching"
	"ecodeli-dispatch/internal/service/routes"
	"ecodeli-dispatch/internal/service/storage"
	"ecodeli-dispatch/internal/transport/kafka"
)

// newRoutePublisher sends route events to Kafka, or matches them inline when
// Kafka is disabled.
func newRoutePublisher(cfg *config.Config, producer *kafka.Producer, p *routes.Processor) routes.Publisher {
	if producer == nil {
		return p
	}
	return kafka.NewRoutePublisher(producer, cfg.Kafka.RoutesTopic)
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewAvailabilityRepo,
		repository.NewAnnouncementRepo,
		repository.NewAssignmentRepo,
		repository.NewRouteRepo,
		repository.NewStorageRepo,
		newStorageCache,
		func(
			repo *repository.AvailabilityRepo,
			m *metrics.Business,
			timeout time.Duration,
			logger logx.Logger,
		) *availability.Service {
			return availability.NewService(repo, m, timeout, logger)
		},
		func(
			announcements *repository.AnnouncementRepo,
			routeRepo *repository.RouteRepo,
			m *metrics.Business,
			timeout time.Duration,
			logger logx.Logger,
		) *matching.Service {
			return matching.NewService(announcements, routeRepo, m, timeout, logger)
		},
		func(
			repo *repository.AssignmentRepo,
			n assignment.Notifier,
			m *metrics.Business,
			timeout time.Duration,
			logger logx.Logger,
		) *assignment.Service {
			return assignment.NewService(repo, n, m, timeout, logger)
		},
		func(
			routeRepo *repository.RouteRepo,
			matcher *matching.Service,
			n assignment.Notifier,
			logger logx.Logger,
		) *routes.Processor {
			return routes.NewProcessor(routeRepo, matcher, n, logger)
		},
		newRoutePublisher,
		func(
			repo *repository.RouteRepo,
			pub routes.Publisher,
			timeout time.Duration,
			logger logx.Logger,
		) *routes.Service {
			return routes.NewService(repo, pub, timeout, logger)
		},
		func(locations *cache.StorageLocations, timeout time.Duration) *storage.Service {
			return storage.NewService(locations, timeout)
		},
	)
}
