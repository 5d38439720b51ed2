package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/audit"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

// StockUseCase bulk quantity adjustments. Each adjustment runs inside one
// transaction with a row lock (SELECT FOR UPDATE) so two concurrent
// stock-outs cannot both pass the zero floor.
type StockUseCase struct {
	txRunner      TxRunner
	stockRepo     repository.StockRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	auditor       *audit.Recorder
}

// NewStockUseCase builds the use case.
func NewStockUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	auditor *audit.Recorder,
) *StockUseCase {
	return &StockUseCase{
		txRunner:      txRunner,
		stockRepo:     stockRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		auditor:       auditor,
	}
}

// StockIn adds quantity to a (product, warehouse) pair and writes one
// movement ledger row in the same transaction.
func (uc *StockUseCase) StockIn(ctx context.Context, actor audit.Actor, in dto.StockAdjustRequest) (*dto.StockResponse, error) {
	return uc.adjust(ctx, actor, in, entity.MovementTypeIN)
}

// StockOut removes quantity. An out exceeding the available quantity fails
// with ErrInsufficientStock and leaves the row untouched.
func (uc *StockUseCase) StockOut(ctx context.Context, actor audit.Actor, in dto.StockAdjustRequest) (*dto.StockResponse, error) {
	return uc.adjust(ctx, actor, in, entity.MovementTypeOUT)
}

func (uc *StockUseCase) adjust(ctx context.Context, actor audit.Actor, in dto.StockAdjustRequest, movType string) (*dto.StockResponse, error) {
	if in.ProductID == "" || in.WarehouseID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var out *dto.StockResponse
	err = uc.txRunner.Run(ctx, func(
		_ repository.ItemRepository,
		_ repository.ItemHistoryRepository,
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Seed the row, then lock it. The lock only exists on an existing
		// row; without the seed, two first-time adjustments against the same
		// pair would both read zero and the second write would win.
		if err := stockRepo.Ensure(in.ProductID, in.WarehouseID); err != nil {
			return err
		}
		stock, err := stockRepo.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		qty := in.Quantity
		if movType == entity.MovementTypeOUT {
			if stock.Quantity < in.Quantity {
				return domain.ErrInsufficientStock
			}
			qty = -in.Quantity
		}
		stock.Quantity += qty
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			Type:        movType,
			Quantity:    qty,
			Description: in.Description,
			CreatedBy:   actor.ID,
			CreatedAt:   now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		out = &dto.StockResponse{
			ProductID:   stock.ProductID,
			WarehouseID: stock.WarehouseID,
			Quantity:    stock.Quantity,
			UpdatedAt:   stock.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := entity.AuditActionStockIn
	if movType == entity.MovementTypeOUT {
		action = entity.AuditActionStockOut
	}
	entityID := fmt.Sprintf("%s/%s", in.ProductID, in.WarehouseID)
	uc.auditor.Record(actor, "stock", entityID, action, nil, out, in.Description)
	return out, nil
}

// List returns current stock levels.
func (uc *StockUseCase) List(limit, offset int) (*dto.StockListResponse, error) {
	stocks, err := uc.stockRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.StockListResponse{Data: make([]dto.StockResponse, 0, len(stocks))}
	for _, s := range stocks {
		out.Data = append(out.Data, dto.StockResponse{
			ProductID:   s.ProductID,
			WarehouseID: s.WarehouseID,
			Quantity:    s.Quantity,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return out, nil
}
