package domain

import "ecodeli-dispatch/internal/geo"

// StorageLocation is a warehouse or locker site where parcels can be dropped.
type StorageLocation struct {
	ID       string
	Name     string
	Address  string
	City     string
	Point    geo.Point
	IsActive bool
}

// NearbyStorage is a storage location with its distance from the search point.
type NearbyStorage struct {
	StorageLocation
	DistanceKm float64
}
