package entity

import (
	"encoding/json"
	"time"
)

// Item history action kinds.
const (
	HistoryActionCreate  = "CREATE"
	HistoryActionUpdate  = "UPDATE"
	HistoryActionMove    = "MOVE"
	HistoryActionDelete  = "DELETE"
	HistoryActionRestore = "RESTORE"
	HistoryActionSync    = "SYNC"
)

// MetadataKeyArtacomUser marks a history row as originating from the partner
// sync; its value is the external actor's display name (no local User row
// exists for them).
const MetadataKeyArtacomUser = "artacomUser"

// ItemHistory is one append-only row per field-level change to an item.
// Every status transition, move, edit, delete and restore produces exactly
// one row; sync-originated changes carry provenance in Metadata.
type ItemHistory struct {
	ID        string
	ItemID    string
	Action    string
	Field     string // status, warehouse_id, sn, mac, notes
	OldValue  string
	NewValue  string
	ActorName string          // local user name, or external name for sync rows
	Metadata  json.RawMessage // optional, e.g. {"artacomUser":"budi"}
	CreatedAt time.Time
}
