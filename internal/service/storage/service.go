// Package storage answers proximity queries over storage locations.
package storage

import (
	"context"
	"sort"
	"time"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/geo"
)

// DefaultNearbyKm is the search radius used when none is given.
const DefaultNearbyKm = 50.0

type locationSource interface {
	ListActive(ctx context.Context) ([]domain.StorageLocation, error)
}

// Service - storage location lookups.
type Service struct {
	source           locationSource
	operationTimeout time.Duration
}

// NewService creates a new storage Service.
func NewService(source locationSource, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{source: source, operationTimeout: timeout}
}

// Nearby returns active locations within maxKm of p, closest first.
// A zero maxKm means DefaultNearbyKm.
func (s *Service) Nearby(ctx context.Context, p geo.Point, maxKm float64) ([]domain.NearbyStorage, error) {
	if !p.Valid() {
		return nil, apperr.Validation("coordinates are out of range")
	}
	if maxKm < 0 {
		return nil, apperr.Validation("max distance must be positive")
	}
	if maxKm == 0 {
		maxKm = DefaultNearbyKm
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	locations, err := s.source.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.NearbyStorage, 0, len(locations))
	for _, l := range locations {
		if !l.IsActive {
			continue
		}
		d := geo.DistanceKm(p, l.Point)
		if d > maxKm {
			continue
		}
		out = append(out, domain.NearbyStorage{StorageLocation: l, DistanceKm: d})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out, nil
}
