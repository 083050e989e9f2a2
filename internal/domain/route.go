package domain

import (
	"time"

	"ecodeli-dispatch/internal/geo"
)

// RouteStatus is the lifecycle status of a planned route.
type RouteStatus string

// List of possible route statuses
const (
	RouteStatusPlanned   RouteStatus = "PLANNED"
	RouteStatusActive    RouteStatus = "ACTIVE"
	RouteStatusCompleted RouteStatus = "COMPLETED"
	RouteStatusCancelled RouteStatus = "CANCELLED"
)

// VehicleType of the deliverer on a route.
type VehicleType string

// List of vehicle types
const (
	VehicleBike    VehicleType = "BIKE"
	VehicleScooter VehicleType = "SCOOTER"
	VehicleCar     VehicleType = "CAR"
	VehicleVan     VehicleType = "VAN"
	VehicleTruck   VehicleType = "TRUCK"
)

var allowedVehicles = [...]VehicleType{
	VehicleBike, VehicleScooter, VehicleCar, VehicleVan, VehicleTruck,
}

// Valid checks if the VehicleType is valid
func (v VehicleType) Valid() bool {
	for _, a := range allowedVehicles {
		if v == a {
			return true
		}
	}
	return false
}

// Place is an addressed coordinate.
type Place struct {
	Address string
	Point   geo.Point
}

// PlannedRoute is a deliverer's declared point-to-point trip.
type PlannedRoute struct {
	ID            string
	DelivererID   string
	Start         Place
	End           Place
	PlannedDate   time.Time
	Window        *TimeSlot
	Vehicle       VehicleType
	Capacity      int
	IsActive      bool
	NotifyOnMatch bool
	Status        RouteStatus
	CreatedAt     time.Time
}
