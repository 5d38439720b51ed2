package entity

import "time"

// Role groups an ordered set of permission strings under a unique name.
// Permissions are opaque tokens compared by exact match; there is no
// hierarchy or inheritance between roles.
type Role struct {
	ID          string
	Name        string
	Permissions []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPermission reports whether p is in the role's permission set.
func (r *Role) HasPermission(p string) bool {
	for _, perm := range r.Permissions {
		if perm == p {
			return true
		}
	}
	return false
}

// MissingPermissions returns the subset of ps the role does not hold,
// preserving order. Used by the gate to name what is missing on rejection.
func (r *Role) MissingPermissions(ps []string) []string {
	var missing []string
	for _, p := range ps {
		if !r.HasPermission(p) {
			missing = append(missing, p)
		}
	}
	return missing
}
