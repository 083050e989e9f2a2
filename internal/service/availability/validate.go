package availability

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
)

// MaxCapacity is the largest number of deliveries an availability may accept.
const MaxCapacity = 100

// Normalize validates a submitted availability against today's date and
// returns the canonical form that is stored and expanded: calendar dates at
// midnight UTC, exclusions deduplicated, recurrence fields cleared on one-off
// availabilities and a capacity of at least one.
func Normalize(a domain.Availability, today time.Time) (domain.Availability, error) {
	a.UserID = strings.TrimSpace(a.UserID)
	if a.UserID == "" {
		return domain.Availability{}, apperr.Validation("user id is required")
	}
	if len(a.Slots) == 0 {
		return domain.Availability{}, apperr.Validation("at least one time slot is required")
	}
	for i, s := range a.Slots {
		if !domain.ValidClock(s.Start) || !domain.ValidClock(s.End) {
			return domain.Availability{}, apperr.Validation(fmt.Sprintf("slot %d: times must be HH:MM", i))
		}
		if !s.Ordered() {
			return domain.Availability{}, apperr.Validation(
				fmt.Sprintf("slot %d: start %s must be before end %s", i, s.Start, s.End))
		}
	}

	if a.Date.IsZero() {
		return domain.Availability{}, apperr.Validation("date is required")
	}
	a.Date = domain.DateOf(a.Date)
	if a.Date.Before(domain.DateOf(today)) {
		return domain.Availability{}, apperr.InvalidDate("date cannot be in the past")
	}

	if a.MaxCapacity < 0 {
		return domain.Availability{}, apperr.Validation("max capacity cannot be negative")
	}
	if a.MaxCapacity > MaxCapacity {
		return domain.Availability{}, apperr.Validation(fmt.Sprintf("max capacity cannot exceed %d", MaxCapacity))
	}
	if a.MaxCapacity == 0 {
		a.MaxCapacity = 1
	}

	if !a.IsRecurring {
		a.Pattern = domain.PatternNone
		a.RecurrenceEnd = nil
		a.ExcludedDates = nil
		return a, nil
	}

	if !a.Pattern.Valid() {
		return domain.Availability{}, apperr.Validation("recurrence pattern is required for a recurring availability")
	}
	if a.RecurrenceEnd == nil {
		return domain.Availability{}, apperr.Validation("recurrence end date is required for a recurring availability")
	}
	end := domain.DateOf(*a.RecurrenceEnd)
	if !end.After(a.Date) {
		return domain.Availability{}, apperr.Validation("recurrence end date must be after the start date")
	}
	a.RecurrenceEnd = &end
	a.ExcludedDates = uniqueDates(a.ExcludedDates)
	return a, nil
}

func uniqueDates(in []time.Time) []time.Time {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[time.Time]struct{}, len(in))
	out := make([]time.Time, 0, len(in))
	for _, d := range in {
		d = domain.DateOf(d)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
