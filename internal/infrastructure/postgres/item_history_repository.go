package postgres

import (
	"context"
	"fmt"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

var _ repository.ItemHistoryRepository = (*ItemHistoryRepo)(nil)

// ItemHistoryRepo persists the append-only per-item change log.
type ItemHistoryRepo struct {
	q Querier
}

// NewItemHistoryRepository builds the item history persistence adapter.
func NewItemHistoryRepository(q Querier) *ItemHistoryRepo {
	return &ItemHistoryRepo{q: q}
}

// Create appends one history row.
func (r *ItemHistoryRepo) Create(h *entity.ItemHistory) error {
	query := `
		INSERT INTO item_histories (id, item_id, action, field, old_value, new_value, actor_name, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.ItemID, h.Action, h.Field, h.OldValue, h.NewValue,
		h.ActorName, h.Metadata, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item history: %w", err)
	}
	return nil
}

// ListByItem returns the change log of one item, newest first.
func (r *ItemHistoryRepo) ListByItem(itemID string, limit, offset int) ([]*entity.ItemHistory, error) {
	query := `
		SELECT id, item_id, action, field, old_value, new_value, actor_name, metadata, created_at
		FROM item_histories WHERE item_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list item histories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemHistory
	for rows.Next() {
		var h entity.ItemHistory
		err := rows.Scan(
			&h.ID, &h.ItemID, &h.Action, &h.Field, &h.OldValue, &h.NewValue,
			&h.ActorName, &h.Metadata, &h.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan item history: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
