package assignmenttx

import (
	"context"
	"time"

	"ecodeli-dispatch/internal/domain"
)

// Repository is the transactional view used by application submission and
// resolution. Getters return nil, nil when the row does not exist.
type Repository interface {
	GetAnnouncementForUpdate(ctx context.Context, id string) (*domain.Announcement, error)
	MarkAnnouncementAssigned(ctx context.Context, id, delivererID string, at time.Time) error
	IncrementApplicationsCount(ctx context.Context, announcementID string) error

	GetApplication(ctx context.Context, id string) (*domain.Application, error)
	GetApplicationForUpdate(ctx context.Context, id string) (*domain.Application, error)
	FindApplication(ctx context.Context, announcementID, delivererID string) (*domain.Application, error)
	InsertApplication(ctx context.Context, a *domain.Application) error
	UpdateApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus, reviewedAt time.Time, reviewerID *string) error
	RejectPendingSiblings(ctx context.Context, announcementID, exceptID string, at time.Time, reviewerID *string) ([]domain.Application, error)

	TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error)
	InsertDelivery(ctx context.Context, d *domain.Delivery) error
}
