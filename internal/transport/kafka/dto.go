package kafka

import (
	"strings"
	"time"

	"ecodeli-dispatch/internal/service/routes"
)

// EventDTO is a data transfer object for routes.Event
type EventDTO struct {
	RouteID     string    `json:"route_id"`
	DelivererID string    `json:"deliverer_id"`
	Type        string    `json:"type"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ToDomain converts EventDTO to routes.Event
func ToDomain(dto EventDTO) routes.Event {
	return routes.Event{
		RouteID:     strings.TrimSpace(dto.RouteID),
		DelivererID: strings.TrimSpace(dto.DelivererID),
		Type:        strings.TrimSpace(dto.Type),
		OccurredAt:  dto.OccurredAt,
	}
}

// FromDomain converts routes.Event to EventDTO
func FromDomain(e routes.Event) EventDTO {
	return EventDTO{
		RouteID:     e.RouteID,
		DelivererID: e.DelivererID,
		Type:        e.Type,
		OccurredAt:  e.OccurredAt.UTC(),
	}
}
