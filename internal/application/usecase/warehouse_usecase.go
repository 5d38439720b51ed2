package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/audit"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/application/dto"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"
	"github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/repository"
)

// WarehouseUseCase stock location management.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	auditor       *audit.Recorder
}

// NewWarehouseUseCase builds the use case.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository, auditor *audit.Recorder) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo, auditor: auditor}
}

// Create adds a warehouse with a unique code.
func (uc *WarehouseUseCase) Create(actor audit.Actor, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Code:      in.Code,
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	out := toWarehouseResponse(warehouse)
	uc.auditor.Record(actor, "warehouse", warehouse.ID, entity.AuditActionCreate, nil, out, "warehouse created")
	return out, nil
}

// GetByID returns one warehouse.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

// List returns all warehouses.
func (uc *WarehouseUseCase) List() (*dto.WarehouseListResponse, error) {
	warehouses, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.WarehouseListResponse{Data: make([]dto.WarehouseResponse, 0, len(warehouses))}
	for _, w := range warehouses {
		out.Data = append(out.Data, *toWarehouseResponse(w))
	}
	return out, nil
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Code:      w.Code,
		Name:      w.Name,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
