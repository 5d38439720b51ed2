package entity

import "time"

// Stock represents the bulk (non-serialized) quantity of a product in a
// warehouse. Quantity never goes negative: stock-out checks happen under a
// row lock inside one transaction.
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}

// Stock movement types.
const (
	MovementTypeIN  = "IN"
	MovementTypeOUT = "OUT"
)

// StockMovement is one append-only ledger row per bulk adjustment, written
// in the same transaction as the quantity change.
type StockMovement struct {
	ID          string
	ProductID   string
	WarehouseID string
	Type        string // IN, OUT
	Quantity    int64  // positive for IN, negative for OUT
	Description string
	CreatedBy   string
	CreatedAt   time.Time
}
