package repository

import "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"

// AuditLogRepository persists the append-only audit trail. There is no
// update or delete: rows are immutable after insert.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	List(limit, offset int) ([]*entity.AuditLog, error)
	ListByEntity(entityType, entityID string, limit, offset int) ([]*entity.AuditLog, error)
}
