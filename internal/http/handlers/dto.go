package handlers

import "time"

type slotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type placeDTO struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type createAvailabilityRequest struct {
	Date              string    `json:"date"`
	Slots             []slotDTO `json:"slots"`
	WorkType          string    `json:"work_type"`
	IsRecurring       bool      `json:"is_recurring"`
	RecurrencePattern string    `json:"recurrence_pattern"`
	RecurrenceEndDate *string   `json:"recurrence_end_date,omitempty"`
	ExcludedDates     []string  `json:"excluded_dates"`
	MaxCapacity       int       `json:"max_capacity"`
	Notes             string    `json:"notes"`
	ServiceAreaIDs    []string  `json:"service_area_ids"`
}

type availabilityDTO struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Date              string    `json:"date"`
	Slots             []slotDTO `json:"slots"`
	WorkType          string    `json:"work_type"`
	IsRecurring       bool      `json:"is_recurring"`
	RecurrencePattern string    `json:"recurrence_pattern,omitempty"`
	RecurrenceEndDate *string   `json:"recurrence_end_date,omitempty"`
	ExcludedDates     []string  `json:"excluded_dates"`
	MaxCapacity       int       `json:"max_capacity"`
	Notes             string    `json:"notes,omitempty"`
	ServiceAreaIDs    []string  `json:"service_area_ids"`
	CreatedAt         time.Time `json:"created_at"`
}

type occurrenceDTO struct {
	ID             string `json:"id"`
	AvailabilityID string `json:"availability_id"`
	UserID         string `json:"user_id"`
	Date           string `json:"date"`
	WorkType       string `json:"work_type"`
	MaxCapacity    int    `json:"max_capacity"`
	Notes          string `json:"notes,omitempty"`
}

type createAvailabilityResponse struct {
	Availability    availabilityDTO `json:"availability"`
	Occurrences     []occurrenceDTO `json:"occurrences"`
	OccurrenceCount int             `json:"occurrence_count"`
}

type regenerateResponse struct {
	Generated int   `json:"generated"`
	Inserted  int64 `json:"inserted"`
}

type createRouteRequest struct {
	Start         placeDTO `json:"start"`
	End           placeDTO `json:"end"`
	PlannedDate   string   `json:"planned_date"`
	Window        *slotDTO `json:"window,omitempty"`
	VehicleType   string   `json:"vehicle_type"`
	Capacity      int      `json:"capacity"`
	NotifyOnMatch *bool    `json:"notify_on_match,omitempty"`
}

type routeDTO struct {
	ID            string    `json:"id"`
	DelivererID   string    `json:"deliverer_id"`
	Start         placeDTO  `json:"start"`
	End           placeDTO  `json:"end"`
	PlannedDate   string    `json:"planned_date"`
	Window        *slotDTO  `json:"window,omitempty"`
	VehicleType   string    `json:"vehicle_type"`
	Capacity      int       `json:"capacity"`
	IsActive      bool      `json:"is_active"`
	NotifyOnMatch bool      `json:"notify_on_match"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type announcementDTO struct {
	ID                string    `json:"id"`
	ClientID          string    `json:"client_id"`
	Title             string    `json:"title"`
	Pickup            placeDTO  `json:"pickup"`
	Delivery          placeDTO  `json:"delivery"`
	Price             float64   `json:"price"`
	DeliveryType      string    `json:"delivery_type"`
	Priority          int       `json:"priority"`
	Urgency           string    `json:"urgency"`
	PickupDate        string    `json:"pickup_date"`
	Status            string    `json:"status"`
	DelivererID       *string   `json:"deliverer_id,omitempty"`
	ApplicationsCount int       `json:"applications_count"`
	CreatedAt         time.Time `json:"created_at"`
}

type scoredAnnouncementDTO struct {
	announcementDTO
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type routeMatchDTO struct {
	announcementDTO
	PickupDistanceKm   float64 `json:"pickup_distance_km"`
	DeliveryDistanceKm float64 `json:"delivery_distance_km"`
}

type routeMatchesResponse struct {
	Route   routeDTO        `json:"route"`
	Matches []routeMatchDTO `json:"matches"`
}

type applyRequest struct {
	ProposedPrice         *float64   `json:"proposed_price,omitempty"`
	EstimatedPickupTime   *time.Time `json:"estimated_pickup_time,omitempty"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`
	Message               string     `json:"message"`
}

type applicationDTO struct {
	ID                    string     `json:"id"`
	AnnouncementID        string     `json:"announcement_id"`
	DelivererID           string     `json:"deliverer_id"`
	ProposedPrice         *float64   `json:"proposed_price,omitempty"`
	EstimatedPickupTime   *time.Time `json:"estimated_pickup_time,omitempty"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`
	Message               string     `json:"message,omitempty"`
	Status                string     `json:"status"`
	AppliedAt             time.Time  `json:"applied_at"`
	ReviewedAt            *time.Time `json:"reviewed_at,omitempty"`
}

type resolveRequest struct {
	Status string `json:"status"`
}

type deliveryDTO struct {
	ID             string    `json:"id"`
	AnnouncementID string    `json:"announcement_id"`
	ApplicationID  string    `json:"application_id"`
	ClientID       string    `json:"client_id"`
	DelivererID    string    `json:"deliverer_id"`
	Price          float64   `json:"price"`
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type resolveResponse struct {
	Application   applicationDTO `json:"application"`
	Delivery      *deliveryDTO   `json:"delivery,omitempty"`
	RejectedCount int            `json:"rejected_count"`
}

type nearbyStorageDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceKm float64 `json:"distance_km"`
}
