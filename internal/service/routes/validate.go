package routes

import (
	"strings"
	"time"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/domain"
)

// MaxCapacity is the largest parcel capacity a route may declare.
const MaxCapacity = 100

// Normalize validates a new planned route and fills its defaults.
func Normalize(r domain.PlannedRoute, today time.Time) (domain.PlannedRoute, error) {
	r.DelivererID = strings.TrimSpace(r.DelivererID)
	if r.DelivererID == "" {
		return domain.PlannedRoute{}, apperr.Validation("deliverer id is required")
	}

	places := []struct {
		name  string
		place *domain.Place
	}{{"start", &r.Start}, {"end", &r.End}}
	for _, pl := range places {
		name, p := pl.name, pl.place
		p.Address = strings.TrimSpace(p.Address)
		if p.Address == "" {
			return domain.PlannedRoute{}, apperr.Validation(name + " address is required")
		}
		if !p.Point.Valid() {
			return domain.PlannedRoute{}, apperr.Validation(name + " coordinates are out of range")
		}
	}

	if r.PlannedDate.IsZero() {
		return domain.PlannedRoute{}, apperr.InvalidDate("planned date is required")
	}
	r.PlannedDate = domain.DateOf(r.PlannedDate)
	if r.PlannedDate.Before(domain.DateOf(today)) {
		return domain.PlannedRoute{}, apperr.InvalidDate("planned date is in the past")
	}

	if r.Window != nil {
		if !domain.ValidClock(r.Window.Start) || !domain.ValidClock(r.Window.End) {
			return domain.PlannedRoute{}, apperr.Validation("departure window must use HH:MM")
		}
		if !r.Window.Ordered() {
			return domain.PlannedRoute{}, apperr.Validation("departure window must end after it starts")
		}
	}

	if r.Vehicle == "" {
		r.Vehicle = domain.VehicleCar
	}
	if !r.Vehicle.Valid() {
		return domain.PlannedRoute{}, apperr.Validation("unknown vehicle type")
	}

	switch {
	case r.Capacity < 0 || r.Capacity > MaxCapacity:
		return domain.PlannedRoute{}, apperr.Validation("capacity must be between 0 and 100")
	case r.Capacity == 0:
		r.Capacity = MaxCapacity
	}

	r.Status = domain.RouteStatusPlanned
	r.IsActive = true
	return r, nil
}
