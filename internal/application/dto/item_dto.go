package dto

import "time"

// CreateItemRequest new serialized unit. Status defaults to GUDANG when
// empty; imports may set it explicitly.
type CreateItemRequest struct {
	ProductID   string `json:"product_id"`
	SN          string `json:"sn"`
	MAC         string `json:"mac"`
	Status      string `json:"status"`
	WarehouseID string `json:"warehouse_id"`
	Notes       string `json:"notes"`
}

// UpdateItemRequest field edits (SN/MAC/notes). Pointer fields distinguish
// "leave unchanged" (nil) from "set to empty".
type UpdateItemRequest struct {
	SN    *string `json:"sn"`
	MAC   *string `json:"mac"`
	Notes *string `json:"notes"`
}

// MoveItemRequest moves an item to another warehouse.
type MoveItemRequest struct {
	WarehouseID string `json:"warehouse_id"`
}

// UpdateItemStatusRequest status transition (GUDANG/TEKNISI/TERPASANG).
type UpdateItemStatusRequest struct {
	Status string `json:"status"`
}

// ItemResponse serialized item payload.
type ItemResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	SN          string    `json:"sn"`
	MAC         string    `json:"mac,omitempty"`
	Status      string    `json:"status"`
	WarehouseID string    `json:"warehouse_id"`
	Notes       string    `json:"notes,omitempty"`
	Deleted     bool      `json:"deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemListResponse paged item listing.
type ItemListResponse struct {
	Data []ItemResponse `json:"data"`
}
