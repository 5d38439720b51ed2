package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/audit"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

// ItemUseCase serialized item management. Every mutation writes its
// ItemHistory rows in the same transaction as the item update, so the
// timeline can never miss or duplicate a transition.
type ItemUseCase struct {
	txRunner      TxRunner
	itemRepo      repository.ItemRepository
	historyRepo   repository.ItemHistoryRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	auditor       *audit.Recorder
}

// NewItemUseCase builds the use case.
func NewItemUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	historyRepo repository.ItemHistoryRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	auditor *audit.Recorder,
) *ItemUseCase {
	return &ItemUseCase{
		txRunner:      txRunner,
		itemRepo:      itemRepo,
		historyRepo:   historyRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		auditor:       auditor,
	}
}

// Create registers a serialized unit. Status defaults to GUDANG unless the
// request imports the item with another status.
func (uc *ItemUseCase) Create(ctx context.Context, actor audit.Actor, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.ProductID == "" || in.SN == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusGudang
	}
	if !entity.ValidStatus(status) {
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
	item := &entity.Item{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		SN:          in.SN,
		MAC:         in.MAC,
		Status:      status,
		WarehouseID: in.WarehouseID,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		historyRepo repository.ItemHistoryRepository,
		_ repository.StockRepository,
		_ repository.StockMovementRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		return historyRepo.Create(&entity.ItemHistory{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Action:    entity.HistoryActionCreate,
			Field:     "status",
			OldValue:  "",
			NewValue:  status,
			ActorName: actor.Name,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	out := toItemResponse(item)
	uc.auditor.Record(actor, "item", item.ID, entity.AuditActionCreate, nil, out, "item created")
	return out, nil
}

// Update edits SN/MAC/notes. One history row is written per changed field,
// in the same transaction as the update.
func (uc *ItemUseCase) Update(ctx context.Context, actor audit.Actor, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Deleted {
		return nil, domain.ErrNotFound
	}
	before := toItemResponse(item)

	type fieldChange struct {
		field, oldVal, newVal string
	}
	var changes []fieldChange
	if in.SN != nil && *in.SN != item.SN {
		if *in.SN == "" {
			return nil, domain.ErrInvalidInput
		}
		changes = append(changes, fieldChange{"sn", item.SN, *in.SN})
		item.SN = *in.SN
	}
	if in.MAC != nil && *in.MAC != item.MAC {
		changes = append(changes, fieldChange{"mac", item.MAC, *in.MAC})
		item.MAC = *in.MAC
	}
	if in.Notes != nil && *in.Notes != item.Notes {
		changes = append(changes, fieldChange{"notes", item.Notes, *in.Notes})
		item.Notes = *in.Notes
	}
	if len(changes) == 0 {
		return before, nil
	}

	now := time.Now()
	item.UpdatedAt = now
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		historyRepo repository.ItemHistoryRepository,
		_ repository.StockRepository,
		_ repository.StockMovementRepository,
	) error {
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		for _, ch := range changes {
			h := &entity.ItemHistory{
				ID:        uuid.New().String(),
				ItemID:    item.ID,
				Action:    entity.HistoryActionUpdate,
				Field:     ch.field,
				OldValue:  ch.oldVal,
				NewValue:  ch.newVal,
				ActorName: actor.Name,
				CreatedAt: now,
			}
			if err := historyRepo.Create(h); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toItemResponse(item)
	uc.auditor.Record(actor, "item", item.ID, entity.AuditActionUpdate, before, out, "item updated")
	return out, nil
}

// Move relocates the item to another warehouse and records exactly one
// MOVE history row.
func (uc *ItemUseCase) Move(ctx context.Context, actor audit.Actor, id string, in dto.MoveItemRequest) (*dto.ItemResponse, error) {
	if in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Deleted {
		return nil, domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if item.WarehouseID == in.WarehouseID {
		return toItemResponse(item), nil
	}
	before := toItemResponse(item)

	now := time.Now()
	oldWarehouse := item.WarehouseID
	item.WarehouseID = in.WarehouseID
	item.UpdatedAt = now
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		historyRepo repository.ItemHistoryRepository,
		_ repository.StockRepository,
		_ repository.StockMovementRepository,
	) error {
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		return historyRepo.Create(&entity.ItemHistory{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Action:    entity.HistoryActionMove,
			Field:     "warehouse_id",
			OldValue:  oldWarehouse,
			NewValue:  in.WarehouseID,
			ActorName: actor.Name,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	out := toItemResponse(item)
	uc.auditor.Record(actor, "item", item.ID, entity.AuditActionMove, before, out, "item moved")
	return out, nil
}

// UpdateStatus applies a status transition. Any status may move to any
// other; the invariant is that the transition produces exactly one history
// row with the old and new values.
func (uc *ItemUseCase) UpdateStatus(ctx context.Context, actor audit.Actor, id string, in dto.UpdateItemStatusRequest) (*dto.ItemResponse, error) {
	if !entity.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Deleted {
		return nil, domain.ErrNotFound
	}
	if item.Status == in.Status {
		return toItemResponse(item), nil
	}
	before := toItemResponse(item)

	now := time.Now()
	oldStatus := item.Status
	item.Status = in.Status
	item.UpdatedAt = now
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		historyRepo repository.ItemHistoryRepository,
		_ repository.StockRepository,
		_ repository.StockMovementRepository,
	) error {
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		return historyRepo.Create(&entity.ItemHistory{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Action:    entity.HistoryActionUpdate,
			Field:     "status",
			OldValue:  oldStatus,
			NewValue:  in.Status,
			ActorName: actor.Name,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	out := toItemResponse(item)
	uc.auditor.Record(actor, "item", item.ID, entity.AuditActionUpdate, before, out, "item status changed")
	return out, nil
}

// Delete soft-deletes: flips the visibility flag and writes a DELETE
// history row. The physical row stays.
func (uc *ItemUseCase) Delete(ctx context.Context, actor audit.Actor, id string) error {
	return uc.setDeleted(ctx, actor, id, true)
}

// Restore reverses a soft delete and writes a RESTORE history row.
func (uc *ItemUseCase) Restore(ctx context.Context, actor audit.Actor, id string) error {
	return uc.setDeleted(ctx, actor, id, false)
}

func (uc *ItemUseCase) setDeleted(ctx context.Context, actor audit.Actor, id string, deleted bool) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if item.Deleted == deleted {
		return domain.ErrConflict
	}
	action := entity.HistoryActionDelete
	auditAction := entity.AuditActionDelete
	if !deleted {
		action = entity.HistoryActionRestore
		auditAction = entity.AuditActionRestore
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		historyRepo repository.ItemHistoryRepository,
		_ repository.StockRepository,
		_ repository.StockMovementRepository,
	) error {
		if err := itemRepo.SetDeleted(id, deleted); err != nil {
			return err
		}
		return historyRepo.Create(&entity.ItemHistory{
			ID:        uuid.New().String(),
			ItemID:    id,
			Action:    action,
			ActorName: actor.Name,
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}
	before := toItemResponse(item)
	item.Deleted = deleted
	uc.auditor.Record(actor, "item", id, auditAction, before, toItemResponse(item), "")
	return nil
}

// GetByID returns one item (including soft-deleted ones, flagged as such).
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// List returns items matching the filter.
func (uc *ItemUseCase) List(filter repository.ItemFilter) (*dto.ItemListResponse, error) {
	items, err := uc.itemRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := &dto.ItemListResponse{Data: make([]dto.ItemResponse, 0, len(items))}
	for _, it := range items {
		out.Data = append(out.Data, *toItemResponse(it))
	}
	return out, nil
}

// History returns the item's timeline, newest first.
func (uc *ItemUseCase) History(itemID string, limit, offset int) (*dto.ItemHistoryListResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.historyRepo.ListByItem(itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ItemHistoryListResponse{Data: make([]dto.ItemHistoryResponse, 0, len(rows))}
	for _, h := range rows {
		out.Data = append(out.Data, dto.ItemHistoryResponse{
			ID:        h.ID,
			ItemID:    h.ItemID,
			Action:    h.Action,
			Field:     h.Field,
			OldValue:  h.OldValue,
			NewValue:  h.NewValue,
			ActorName: h.ActorName,
			Metadata:  h.Metadata,
			CreatedAt: h.CreatedAt,
		})
	}
	return out, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          i.ID,
		ProductID:   i.ProductID,
		SN:          i.SN,
		MAC:         i.MAC,
		Status:      i.Status,
		WarehouseID: i.WarehouseID,
		Notes:       i.Notes,
		Deleted:     i.Deleted,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
