package entity

import "time"

// User statuses. Users are never hard-deleted in the normal flow; disabling
// flips Status to inactive so the account stops authenticating.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User represents an operator of the system. Role is resolved per request,
// so permission changes apply immediately.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Name         string
	RoleID       string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the user may authenticate.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
