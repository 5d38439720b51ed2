package repository

import "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"

// ItemHistoryRepository persists the append-only per-item change log.
type ItemHistoryRepository interface {
	Create(h *entity.ItemHistory) error
	ListByItem(itemID string, limit, offset int) ([]*entity.ItemHistory, error)
}
