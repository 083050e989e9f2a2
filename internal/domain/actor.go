package domain

// Role of an authenticated actor.
type Role string

// List of roles
const (
	RoleClient    Role = "CLIENT"
	RoleDeliverer Role = "DELIVERER"
	RoleMerchant  Role = "MERCHANT"
	RoleProvider  Role = "PROVIDER"
	RoleAdmin     Role = "ADMIN"
)

var allowedRoles = [...]Role{
	RoleClient, RoleDeliverer, RoleMerchant, RoleProvider, RoleAdmin,
}

// Valid checks if the role is known
func (r Role) Valid() bool {
	for _, a := range allowedRoles {
		if r == a {
			return true
		}
	}
	return false
}

// Actor is the authenticated caller as established by the boundary.
type Actor struct {
	ID   string
	Role Role
}

// HasRole reports whether the actor has any of roles.
func (a Actor) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// Notification is a message handed to the notification transport.
type Notification struct {
	UserID  string         `json:"user_id"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Type    string         `json:"type"`
	Data    map[string]any `json:"data,omitempty"`
}
