package inventory

import (
	"context"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

// TxRunner executes fn inside one database transaction with repositories
// bound to that transaction. Commit happens only when fn returns nil.
// Mutations and their history/movement rows go through this so the
// "exactly one history row per transition" invariant holds atomically.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		historyRepo repository.ItemHistoryRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
