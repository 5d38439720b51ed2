package dto

import "time"

// CreateProductRequest new SKU.
type CreateProductRequest struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Category string `json:"category"` // Active, Passive, Tool
	Unit     string `json:"unit"`     // pcs, meter, roll, set
}

// UpdateProductRequest product update; the SKU is immutable and absent here.
type UpdateProductRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
}

// ProductResponse product payload.
type ProductResponse struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse paged product listing.
type ProductListResponse struct {
	Data []ProductResponse `json:"data"`
}
