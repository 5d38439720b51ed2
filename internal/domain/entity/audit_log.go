package entity

import (
	"encoding/json"
	"time"
)

// Audit action kinds.
const (
	AuditActionCreate   = "CREATE"
	AuditActionUpdate   = "UPDATE"
	AuditActionDelete   = "DELETE"
	AuditActionRestore  = "RESTORE"
	AuditActionMove     = "MOVE"
	AuditActionStockIn  = "STOCK_IN"
	AuditActionStockOut = "STOCK_OUT"
	AuditActionSync     = "SYNC"
)

// AuditLog is an append-only record of a mutation: who did what to which
// entity, with before/after snapshots. Rows are never updated or deleted.
type AuditLog struct {
	ID          string
	ActorID     string
	ActorName   string
	EntityType  string // product, item, stock, user, role
	EntityID    string
	Action      string
	OldValues   json.RawMessage
	NewValues   json.RawMessage
	Description string
	CreatedAt   time.Time
}
