package dto

import "time"

// StockAdjustRequest bulk quantity adjustment for /api/stocks/in and /out.
type StockAdjustRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"` // always positive; direction comes from the route
	Description string `json:"description"`
}

// StockResponse current quantity for one (product, warehouse) pair.
type StockResponse struct {
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StockListResponse paged stock listing.
type StockListResponse struct {
	Data []StockResponse `json:"data"`
}
