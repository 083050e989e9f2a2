package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/logx"
	"ecodeli-dispatch/internal/metrics"
	"ecodeli-dispatch/internal/ports/availabilitytx"
	"ecodeli-dispatch/internal/recurrence"
)

// Service stores availabilities and keeps their occurrences in sync.
type Service struct {
	repo             availabilityRepository
	metrics          *metrics.Business
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newID            func() string
}

// NewService creates a new availability Service.
func NewService(r availabilityRepository, m *metrics.Business, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		metrics:          m,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            uuid.NewString,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Created is the outcome of creating an availability.
type Created struct {
	Availability domain.Availability
	Occurrences  []domain.Occurrence
}

// Create validates a, stores it and its expanded occurrences in one
// transaction. Nothing is written when validation fails.
func (s *Service) Create(ctx context.Context, a domain.Availability) (Created, error) {
	a, err := Normalize(a, s.now())
	if err != nil {
		return Created{}, err
	}
	a.ID = s.newID()
	occ := s.expand(a)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var inserted int64
	err = s.repo.WithTx(ctx, func(tx availabilitytx.Repository) error {
		if len(a.ServiceAreaIDs) > 0 {
			missing, err := tx.MissingServiceAreas(ctx, a.ServiceAreaIDs)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return apperr.NotFound(fmt.Sprintf("service area %q", missing[0]))
			}
		}
		if err := tx.InsertAvailability(ctx, &a); err != nil {
			return err
		}
		var err error
		inserted, err = tx.UpsertOccurrences(ctx, occ)
		return err
	})
	if err != nil {
		return Created{}, err
	}

	s.metrics.AddOccurrences(inserted)
	s.logger.Info("availability created",
		logx.String("event", "availability_created"),
		logx.String("availability_id", a.ID),
		logx.String("user_id", a.UserID),
		logx.String("pattern", string(a.Pattern)),
		logx.Int64("occurrences", inserted),
	)
	return Created{Availability: a, Occurrences: occ}, nil
}

// Regenerated reports a rerun of the expansion.
type Regenerated struct {
	Generated int
	Inserted  int64
}

// Regenerate reruns the expansion of a stored availability. Existing
// (availability, date) pairs are kept, so repeated calls insert nothing new.
func (s *Service) Regenerate(ctx context.Context, id string) (Regenerated, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return Regenerated{}, err
	}
	if a == nil {
		return Regenerated{}, apperr.NotFound("availability")
	}

	occ := s.expand(*a)
	var inserted int64
	err = s.repo.WithTx(ctx, func(tx availabilitytx.Repository) error {
		var err error
		inserted, err = tx.UpsertOccurrences(ctx, occ)
		return err
	})
	if err != nil {
		return Regenerated{}, err
	}

	s.metrics.AddOccurrences(inserted)
	s.logger.Info("availability regenerated",
		logx.String("event", "availability_regenerated"),
		logx.String("availability_id", a.ID),
		logx.Int("generated", len(occ)),
		logx.Int64("inserted", inserted),
	)
	return Regenerated{Generated: len(occ), Inserted: inserted}, nil
}

// Get returns an availability by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Availability, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.NotFound("availability")
	}
	return a, nil
}

// ListOccurrences returns the stored occurrences of an availability.
func (s *Service) ListOccurrences(ctx context.Context, id string) ([]domain.Occurrence, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListOccurrences(ctx, id)
}

func (s *Service) expand(a domain.Availability) []domain.Occurrence {
	occ := recurrence.Expand(a)
	for i := range occ {
		occ[i].ID = s.newID()
	}
	return occ
}
