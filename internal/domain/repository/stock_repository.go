package repository

import "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"

// StockRepository defines the persistence port for bulk stock quantities.
type StockRepository interface {
	Get(productID, warehouseID string) (*entity.Stock, error)
	// Ensure creates the zero-quantity row for the pair if it does not exist
	// yet. A row lock can only be taken on a row that exists, so adjustments
	// seed the pair before GetForUpdate.
	Ensure(productID, warehouseID string) error
	// GetForUpdate loads the stock row under a row lock (SELECT FOR UPDATE)
	// so that concurrent stock-outs serialize on the database.
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	List(limit, offset int) ([]*entity.Stock, error)
}

// StockMovementRepository persists the append-only bulk adjustment ledger.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
}
