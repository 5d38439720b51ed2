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

// ProductUseCase product catalog management.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	auditor     *audit.Recorder
}

// NewProductUseCase builds the use case.
func NewProductUseCase(productRepo repository.ProductRepository, auditor *audit.Recorder) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, auditor: auditor}
}

// Create adds a SKU. Duplicate SKUs fail with ErrDuplicate (backed by the
// unique constraint, so a concurrent double-create cannot slip through).
func (uc *ProductUseCase) Create(actor audit.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	unit := in.Unit
	if unit == "" {
		unit = "pcs"
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		SKU:       in.SKU,
		Name:      in.Name,
		Category:  in.Category,
		Unit:      unit,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	uc.auditor.Record(actor, "product", product.ID, entity.AuditActionCreate, nil, out, "product created")
	return out, nil
}

// Update modifies name/category/unit. The SKU is immutable identity and
// cannot be changed here.
func (uc *ProductUseCase) Update(actor audit.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	before := toProductResponse(product)
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Category != "" {
		if !entity.ValidCategory(in.Category) {
			return nil, domain.ErrInvalidInput
		}
		product.Category = in.Category
	}
	if in.Unit != "" {
		product.Unit = in.Unit
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	uc.auditor.Record(actor, "product", product.ID, entity.AuditActionUpdate, before, out, "product updated")
	return out, nil
}

// Delete removes a product. The database restricts deletion while items or
// stock still reference the SKU; that surfaces as ErrConflict.
func (uc *ProductUseCase) Delete(actor audit.Actor, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.productRepo.Delete(id); err != nil {
		return err
	}
	uc.auditor.Record(actor, "product", id, entity.AuditActionDelete, toProductResponse(product), nil, "product deleted")
	return nil
}

// GetByID returns one product.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List returns products with pagination.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Data: make([]dto.ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Data = append(out.Data, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Category:  p.Category,
		Unit:      p.Unit,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
