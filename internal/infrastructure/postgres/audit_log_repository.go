package postgres

import (
	"context"
	"fmt"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

const auditLogColumns = `id, actor_id, actor_name, entity_type, entity_id, action, old_values, new_values, description, created_at`

// AuditLogRepo persists the append-only audit trail.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository builds the audit log persistence adapter.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create appends one audit row.
func (r *AuditLogRepo) Create(log *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, actor_id, actor_name, entity_type, entity_id, action, old_values, new_values, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.ActorID, log.ActorName, log.EntityType, log.EntityID,
		log.Action, log.OldValues, log.NewValues, log.Description, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List returns audit rows, newest first.
func (r *AuditLogRepo) List(limit, offset int) ([]*entity.AuditLog, error) {
	query := `SELECT ` + auditLogColumns + ` FROM audit_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByEntity returns the audit trail of one entity, newest first.
func (r *AuditLogRepo) ListByEntity(entityType, entityID string, limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT ` + auditLogColumns + `
		FROM audit_logs WHERE entity_type = $3 AND entity_id = $4
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset, entityType, entityID)
}

func (r *AuditLogRepo) list(query string, limit, offset int, extra ...any) ([]*entity.AuditLog, error) {
	args := append([]any{limit, offset}, extra...)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		err := rows.Scan(
			&l.ID, &l.ActorID, &l.ActorName, &l.EntityType, &l.EntityID,
			&l.Action, &l.OldValues, &l.NewValues, &l.Description, &l.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
