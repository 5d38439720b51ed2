// Package audit appends immutable audit records after successful mutations.
package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/pkg/logger"
)

// Actor identifies who performed a mutation.
type Actor struct {
	ID   string
	Name string
}

// Recorder writes one audit row per successful mutation. The write is
// best-effort and happens after the business transaction commits: a failed
// audit insert is logged at error level and never rolls the mutation back.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder builds the recorder.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record appends one audit row. before/after are serialized to JSON; nil
// means no snapshot for that side (e.g. CREATE has no before).
func (r *Recorder) Record(actor Actor, entityType, entityID, action string, before, after interface{}, description string) {
	row := &entity.AuditLog{
		ID:          uuid.New().String(),
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		OldValues:   marshal(before),
		NewValues:   marshal(after),
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := r.repo.Create(row); err != nil {
		r.log.Error().Err(err).
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Str("action", action).
			Msg("audit write failed, mutation is unaudited")
	}
}

func marshal(v interface{}) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
