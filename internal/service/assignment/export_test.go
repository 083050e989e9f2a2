package assignment

import "time"

// SetClock overrides the service clock.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// SetTrackingGenerator overrides tracking number generation.
func (s *Service) SetTrackingGenerator(fn func() string) { s.newTracking = fn }
