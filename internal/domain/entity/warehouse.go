package entity

import "time"

// Warehouse is a physical stock location (central gudang, regional POP).
type Warehouse struct {
	ID        string
	Code      string // unique, e.g. "GDG-JKT-01"
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
