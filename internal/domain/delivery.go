package domain

import "time"

// DeliveryStatus is the status of a delivery.
type DeliveryStatus string

// List of delivery statuses
const (
	DeliveryPendingPickup DeliveryStatus = "PENDING_PICKUP"
	DeliveryInTransit     DeliveryStatus = "IN_TRANSIT"
	DeliveryDelivered     DeliveryStatus = "DELIVERED"
	DeliveryCancelled     DeliveryStatus = "CANCELLED"
)

// Delivery is the assignment record created when an application is accepted.
type Delivery struct {
	ID             string
	AnnouncementID string
	ApplicationID  string
	ClientID       string
	DelivererID    string
	Price          float64
	TrackingNumber string
	Status         DeliveryStatus
	CreatedAt      time.Time
}
