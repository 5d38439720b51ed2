package dto

import (
	"encoding/json"
	"time"
)

// ItemHistoryResponse one timeline entry for an item.
type ItemHistoryResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Action    string          `json:"action"`
	Field     string          `json:"field,omitempty"`
	OldValue  string          `json:"oldValue,omitempty"`
	NewValue  string          `json:"newValue,omitempty"`
	ActorName string          `json:"actor_name"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ItemHistoryListResponse timeline for GET /api/histories/items/:itemId/history.
type ItemHistoryListResponse struct {
	Data []ItemHistoryResponse `json:"data"`
}

// AuditLogResponse one audit trail entry.
type AuditLogResponse struct {
	ID          string          `json:"id"`
	ActorID     string          `json:"actor_id"`
	ActorName   string          `json:"actor_name"`
	EntityType  string          `json:"entity_type"`
	EntityID    string          `json:"entity_id"`
	Action      string          `json:"action"`
	OldValues   json.RawMessage `json:"old_values,omitempty"`
	NewValues   json.RawMessage `json:"new_values,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AuditLogListResponse paged audit trail.
type AuditLogListResponse struct {
	Data []AuditLogResponse `json:"data"`
}
