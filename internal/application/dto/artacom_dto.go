package dto

import (
	"encoding/json"
	"time"
)

// SyncRunResponse one Artacom sync execution.
type SyncRunResponse struct {
	ID         string          `json:"id"`
	Status     string          `json:"status"`
	Fetched    int             `json:"fetched"`
	Created    int             `json:"created"`
	Updated    int             `json:"updated"`
	Failed     int             `json:"failed"`
	Errors     json.RawMessage `json:"errors,omitempty"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt *time.Time      `json:"finished_at,omitempty"`
}

// SyncRunListResponse sync history listing.
type SyncRunListResponse struct {
	Data []SyncRunResponse `json:"data"`
}

// ArtacomInventoryResponse raw partner inventory preview
// (GET /api/artacom/inventory).
type ArtacomInventoryResponse struct {
	Data interface{} `json:"data"`
}
