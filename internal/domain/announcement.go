package domain

import (
	"time"

	"ecodeli-dispatch/internal/geo"
)

type (
	// AnnouncementStatus is the status of a delivery request.
	AnnouncementStatus string
	// Urgency of a delivery request.
	Urgency string
)

// List of delivery request statuses
const (
	AnnouncementOpen       AnnouncementStatus = "OPEN"
	AnnouncementAssigned   AnnouncementStatus = "ASSIGNED"
	AnnouncementInProgress AnnouncementStatus = "IN_PROGRESS"
	AnnouncementDelivered  AnnouncementStatus = "DELIVERED"
	AnnouncementCancelled  AnnouncementStatus = "CANCELLED"
)

// Assigned reports whether a deliverer is attached at this status.
func (s AnnouncementStatus) Assigned() bool {
	switch s {
	case AnnouncementAssigned, AnnouncementInProgress, AnnouncementDelivered:
		return true
	default:
		return false
	}
}

// List of urgency levels
const (
	UrgencyLow    Urgency = "LOW"
	UrgencyNormal Urgency = "NORMAL"
	UrgencyHigh   Urgency = "HIGH"
	UrgencyUrgent Urgency = "URGENT"
)

// Valid checks if the urgency is known
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyUrgent:
		return true
	default:
		return false
	}
}

// Announcement is a client's delivery request.
type Announcement struct {
	ID                string
	ClientID          string
	Title             string
	Pickup            Place
	Delivery          Place
	Price             float64
	DeliveryType      string
	Priority          int
	Urgency           Urgency
	PickupDate        time.Time
	Status            AnnouncementStatus
	DelivererID       *string
	ApplicationsCount int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Open reports whether the request still accepts applications.
func (a Announcement) Open() bool {
	return a.Status == AnnouncementOpen && a.DelivererID == nil
}

// AnnouncementFilter narrows the announcement browse view. Nil fields are ignored.
type AnnouncementFilter struct {
	MinPrice      *float64
	MaxPrice      *float64
	DeliveryTypes []string
	Urgency       *Urgency
	PickupFrom    *time.Time
	PickupTo      *time.Time
	Near          *geo.Point
	MaxDistanceKm *float64
	Limit         int
}

// ScoredAnnouncement pairs a request with its distance from a reference point.
// DistanceKm is nil when no reference point was given.
type ScoredAnnouncement struct {
	Announcement
	DistanceKm *float64
}

// RouteMatch is a request compatible with a planned route.
type RouteMatch struct {
	Announcement
	PickupDistanceKm   float64
	DeliveryDistanceKm float64
}
