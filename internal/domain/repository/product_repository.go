package repository

import "github.com/Ahmad-Rizki21/InventorySaS-sub001/internal/domain/entity"

// ProductRepository defines the persistence port for Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// Update never touches the SKU: it is immutable identity once items or
	// stock reference the product.
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
