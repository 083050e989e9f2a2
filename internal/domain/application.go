package domain

import "time"

// ApplicationStatus is the review status of a deliverer's bid.
type ApplicationStatus string

// List of application statuses
const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// Resolvable reports whether s is a valid review outcome.
func (s ApplicationStatus) Resolvable() bool {
	return s == ApplicationAccepted || s == ApplicationRejected
}

// Application is a deliverer's bid to fulfil a delivery request.
type Application struct {
	ID                    string
	AnnouncementID        string
	DelivererID           string
	ProposedPrice         *float64
	EstimatedPickupTime   *time.Time
	EstimatedDeliveryTime *time.Time
	Message               string
	Status                ApplicationStatus
	AppliedAt             time.Time
	ReviewedAt            *time.Time
	ReviewerID            *string
}

// ApplyOptions are the optional fields of an application.
type ApplyOptions struct {
	ProposedPrice         *float64
	EstimatedPickupTime   *time.Time
	EstimatedDeliveryTime *time.Time
	Message               string
}

// ResolveResult is the outcome of reviewing an application.
// Delivery is set only when the application was accepted.
type ResolveResult struct {
	Application Application
	Delivery    *Delivery
	Rejected    []Application
}
