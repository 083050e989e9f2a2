package domain

import (
	"regexp"
	"time"
)

// RecurrencePattern is the rule that generates occurrences of an availability.
type RecurrencePattern string

// List of recurrence patterns. PatternNone means a one-off availability.
const (
	PatternNone     RecurrencePattern = ""
	PatternDaily    RecurrencePattern = "DAILY"
	PatternWeekly   RecurrencePattern = "WEEKLY"
	PatternBiweekly RecurrencePattern = "BIWEEKLY"
	PatternMonthly  RecurrencePattern = "MONTHLY"
)

var allowedPatterns = [...]RecurrencePattern{
	PatternDaily, PatternWeekly, PatternBiweekly, PatternMonthly,
}

// Valid checks if the pattern is one of the recurring patterns.
func (p RecurrencePattern) Valid() bool {
	for _, v := range allowedPatterns {
		if p == v {
			return true
		}
	}
	return false
}

var reClock = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidClock reports whether s is a zero-padded 24h "HH:MM" value.
func ValidClock(s string) bool {
	return reClock.MatchString(s)
}

// TimeSlot is a start/end pair of "HH:MM" clock values within a day.
type TimeSlot struct {
	Start string
	End   string
}

// Ordered reports whether the slot starts strictly before it ends.
// Zero-padded 24h values compare correctly as strings.
func (s TimeSlot) Ordered() bool {
	return s.Start < s.End
}

// Availability is a declared open time of a provider or deliverer.
type Availability struct {
	ID             string
	UserID         string
	Date           time.Time
	Slots          []TimeSlot
	WorkType       string
	IsRecurring    bool
	Pattern        RecurrencePattern
	RecurrenceEnd  *time.Time
	ExcludedDates  []time.Time
	MaxCapacity    int
	Notes          string
	ServiceAreaIDs []string
	CreatedAt      time.Time
}

// Occurrence is one concrete calendar date of a recurring availability.
type Occurrence struct {
	ID             string
	AvailabilityID string
	UserID         string
	Date           time.Time
	WorkType       string
	MaxCapacity    int
	Notes          string
}
