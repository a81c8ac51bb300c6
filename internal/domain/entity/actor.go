package entity

// Role is the authorization level of an actor
type Role string

// Roles known to the system
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValidRole validates a role value
func IsValidRole(role string) bool {
	return role == string(RoleAdmin) || role == string(RoleUser)
}

// Actor identifies who is performing an operation. It is passed explicitly
// into every core operation; there is no ambient session state below the
// transport layer.
type Actor struct {
	ID   uint64
	Role Role
}

// IsAdmin reports whether the actor holds administrative capability
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// User represents a reference user record joined into time-log reads
type User struct {
	ID     uint64
	Name   string
	Email  string
	Role   Role
	Status string
}

// UserStatus values
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// IsActive reports whether the user may log time
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// Project represents a reference project record joined into time-log reads
type Project struct {
	ID          uint64
	Title       string
	Description string
	Status      string
}

// ProjectStatus values
const (
	ProjectStatusActive   = "active"
	ProjectStatusArchived = "archived"
)

// IsActive reports whether time may still be logged against the project
func (p *Project) IsActive() bool {
	return p.Status == ProjectStatusActive
}
