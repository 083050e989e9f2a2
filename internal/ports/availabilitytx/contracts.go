package availabilitytx

import (
	"context"

	"ecodeli-dispatch/internal/domain"
)

// Repository is the transactional view used when storing an availability and
// its occurrences.
type Repository interface {
	MissingServiceAreas(ctx context.Context, ids []string) ([]string, error)
	InsertAvailability(ctx context.Context, a *domain.Availability) error
	// UpsertOccurrences inserts occurrences keyed on (availability, date),
	// ignoring pairs that already exist, and returns the number inserted.
	UpsertOccurrences(ctx context.Context, occ []domain.Occurrence) (int64, error)
}
