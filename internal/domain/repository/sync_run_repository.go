package repository

import "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"

// SyncRunRepository persists Artacom sync executions for observability.
type SyncRunRepository interface {
	Create(run *entity.SyncRun) error
	Update(run *entity.SyncRun) error
	GetLatest() (*entity.SyncRun, error)
	List(limit, offset int) ([]*entity.SyncRun, error)
}
