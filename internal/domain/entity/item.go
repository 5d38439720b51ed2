package entity

import "time"

// Item statuses. The transition graph is deliberately unrestricted: any
// status may move to any other; what the system guarantees is that every
// transition is recorded in ItemHistory.
const (
	StatusGudang    = "GUDANG"    // in warehouse
	StatusTeknisi   = "TEKNISI"   // checked out to a field technician
	StatusTerpasang = "TERPASANG" // installed at a customer site
)

// Item represents one physical serialized unit of a product (one row per
// device). Deletion is soft: Deleted hides the item and is reversible.
type Item struct {
	ID          string
	ProductID   string
	SN          string // serial number, unique
	MAC         string // optional, unique when present
	Status      string // GUDANG, TEKNISI, TERPASANG
	WarehouseID string
	Notes       string
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidStatus reports whether s is one of the known item statuses.
func ValidStatus(s string) bool {
	return s == StatusGudang || s == StatusTeknisi || s == StatusTerpasang
}
