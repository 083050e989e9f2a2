package routes

import "time"

// SetClock overrides the service clock.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// SetIDGenerator overrides id generation.
func (s *Service) SetIDGenerator(fn func() string) { s.newID = fn }
