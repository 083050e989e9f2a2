//go:generate mockgen -source=contracts.go -destination=matching_mocks_test.go -package=matching_test

package matching

import (
	"context"
	"time"

	"ecodeli-dispatch/internal/domain"
)

type announcementRepository interface {
	SearchOpen(ctx context.Context, f domain.AnnouncementFilter) ([]domain.Announcement, error)
	ListOpenForDates(ctx context.Context, from, to time.Time) ([]domain.Announcement, error)
}

type routeRepository interface {
	Get(ctx context.Context, id string) (*domain.PlannedRoute, error)
}
