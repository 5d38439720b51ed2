package entity

import (
	"encoding/json"
	"time"
)

// Sync run statuses.
const (
	SyncStatusRunning = "RUNNING"
	SyncStatusSuccess = "SUCCESS"
	SyncStatusPartial = "PARTIAL" // some records failed, the rest applied
	SyncStatusFailed  = "FAILED"  // the fetch itself failed
)

// SyncRun records one execution of the Artacom pull for observability.
// Per-record failures do not abort the batch; they land in Errors.
type SyncRun struct {
	ID         string
	Status     string
	Fetched    int
	Created    int
	Updated    int
	Failed     int
	Errors     json.RawMessage // [{"sn":"...","error":"..."}]
	StartedAt  time.Time
	FinishedAt *time.Time
}
