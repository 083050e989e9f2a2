package routes

import (
	"time"
)

// Event types published for planned routes.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// Event is a single planned route event
type Event struct {
	RouteID     string    `json:"route_id"`
	DelivererID string    `json:"deliverer_id"`
	Type        string    `json:"type"`
	OccurredAt  time.Time `json:"occurred_at"`
}
