package dto

import "time"

// CreateWarehouseRequest new stock location.
type CreateWarehouseRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// WarehouseResponse warehouse payload.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse warehouse listing.
type WarehouseListResponse struct {
	Data []WarehouseResponse `json:"data"`
}
