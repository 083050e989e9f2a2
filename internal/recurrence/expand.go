// Package recurrence turns recurring availabilities into concrete occurrences.
package recurrence

import (
	"time"

	"ecodeli-dispatch/internal/domain"
)

// Dates returns the calendar dates generated by pattern after base, up to and
// including end, skipping excluded dates. The base date itself is never
// returned. The result is ascending and empty when pattern is not recurring or
// end is not after base.
func Dates(base time.Time, pattern domain.RecurrencePattern, end time.Time, excluded []time.Time) []time.Time {
	base = domain.DateOf(base)
	end = domain.DateOf(end)
	if !pattern.Valid() || !end.After(base) {
		return nil
	}

	skip := make(map[time.Time]struct{}, len(excluded))
	for _, d := range excluded {
		skip[domain.DateOf(d)] = struct{}{}
	}

	var out []time.Time
	for c := base.AddDate(0, 0, 1); !c.After(end); c = c.AddDate(0, 0, 1) {
		if _, ok := skip[c]; ok {
			continue
		}
		if matches(base, c, pattern) {
			out = append(out, c)
		}
	}
	return out
}

func matches(base, c time.Time, pattern domain.RecurrencePattern) bool {
	switch pattern {
	case domain.PatternDaily:
		return true
	case domain.PatternWeekly:
		return c.Weekday() == base.Weekday()
	case domain.PatternBiweekly:
		// parity is counted in whole weeks since the base date
		weeks := daysBetween(base, c) / 7
		return c.Weekday() == base.Weekday() && weeks%2 == 0
	case domain.PatternMonthly:
		return c.Day() == base.Day()
	default:
		return false
	}
}

// daysBetween counts whole days between two UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// Expand derives the occurrences of a recurring availability. Each occurrence
// inherits the owner, work type, capacity and notes of a.
func Expand(a domain.Availability) []domain.Occurrence {
	if !a.IsRecurring || a.RecurrenceEnd == nil {
		return nil
	}
	dates := Dates(a.Date, a.Pattern, *a.RecurrenceEnd, a.ExcludedDates)
	out := make([]domain.Occurrence, 0, len(dates))
	for _, d := range dates {
		out = append(out, domain.Occurrence{
			AvailabilityID: a.ID,
			UserID:         a.UserID,
			Date:           d,
			WorkType:       a.WorkType,
			MaxCapacity:    a.MaxCapacity,
			Notes:          a.Notes,
		})
	}
	return out
}
