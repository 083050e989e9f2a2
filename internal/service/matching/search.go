package matching

import (
	"sort"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/geo"
)

// Search page size bounds.
const (
	DefaultSearchLimit = 50
	MaxSearchLimit     = 200
)

// ValidateFilter checks f once and returns it with the limit clamped.
func ValidateFilter(f domain.AnnouncementFilter) (domain.AnnouncementFilter, error) {
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return f, apperr.Validation("min price cannot be negative")
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return f, apperr.Validation("max price cannot be negative")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return f, apperr.Validation("min price is greater than max price")
	}
	if f.Urgency != nil && !f.Urgency.Valid() {
		return f, apperr.Validation("unknown urgency " + string(*f.Urgency))
	}
	if f.PickupFrom != nil && f.PickupTo != nil && f.PickupTo.Before(*f.PickupFrom) {
		return f, apperr.Validation("pickup window ends before it starts")
	}
	if f.Near != nil && !f.Near.Valid() {
		return f, apperr.Validation("location is out of range")
	}
	if f.MaxDistanceKm != nil {
		if f.Near == nil {
			return f, apperr.Validation("max distance requires a location")
		}
		if *f.MaxDistanceKm <= 0 {
			return f, apperr.Validation("max distance must be positive")
		}
	}

	switch {
	case f.Limit <= 0:
		f.Limit = DefaultSearchLimit
	case f.Limit > MaxSearchLimit:
		f.Limit = MaxSearchLimit
	}
	return f, nil
}

// Rank applies the spatial part of f to rows already ordered by priority and
// recency: rows beyond the max distance are dropped and the rest are stably
// reordered by distance. Without a location the order is kept. The result is
// cut to f.Limit.
func Rank(rows []domain.Announcement, f domain.AnnouncementFilter) []domain.ScoredAnnouncement {
	out := make([]domain.ScoredAnnouncement, 0, len(rows))
	for _, a := range rows {
		if !a.Open() {
			continue
		}
		s := domain.ScoredAnnouncement{Announcement: a}
		if f.Near != nil {
			d := geo.DistanceKm(*f.Near, a.Pickup.Point)
			if f.MaxDistanceKm != nil && !within(d, *f.MaxDistanceKm) {
				continue
			}
			s.DistanceKm = &d
		}
		out = append(out, s)
	}

	if f.Near != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return *out[i].DistanceKm < *out[j].DistanceKm
		})
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}
