//go:generate mockgen -source=contracts.go -destination=availability_mocks_test.go -package=availability_test

package availability

import (
	"context"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/ports/availabilitytx"
)

type availabilityRepository interface {
	WithTx(ctx context.Context, fn func(tx availabilitytx.Repository) error) error
	Get(ctx context.Context, id string) (*domain.Availability, error)
	ListOccurrences(ctx context.Context, availabilityID string) ([]domain.Occurrence, error)
}
