package usecase

import (
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

// AuditLogUseCase read surface for the audit trail.
type AuditLogUseCase struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditLogUseCase builds the use case.
func NewAuditLogUseCase(auditRepo repository.AuditLogRepository) *AuditLogUseCase {
	return &AuditLogUseCase{auditRepo: auditRepo}
}

// List returns audit entries, newest first. Optional entity filters narrow
// the result to one record's trail.
func (uc *AuditLogUseCase) List(entityType, entityID string, limit, offset int) (*dto.AuditLogListResponse, error) {
	var (
		rows []*entity.AuditLog
		err  error
	)
	if entityType != "" && entityID != "" {
		rows, err = uc.auditRepo.ListByEntity(entityType, entityID, limit, offset)
	} else {
		rows, err = uc.auditRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.AuditLogListResponse{Data: make([]dto.AuditLogResponse, 0, len(rows))}
	for _, a := range rows {
		out.Data = append(out.Data, dto.AuditLogResponse{
			ID:          a.ID,
			ActorID:     a.ActorID,
			ActorName:   a.ActorName,
			EntityType:  a.EntityType,
			EntityID:    a.EntityID,
			Action:      a.Action,
			OldValues:   a.OldValues,
			NewValues:   a.NewValues,
			Description: a.Description,
			CreatedAt:   a.CreatedAt,
		})
	}
	return out, nil
}
