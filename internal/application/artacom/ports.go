// Package artacom implements the one-way pull synchronization from the
// partner system. Records are upserted by serial number; every local change
// keeps its provenance in the item history.
package artacom

import "context"

// Record is one inventory entry as reported by the partner API.
type Record struct {
	SN            string `json:"sn"`
	MAC           string `json:"mac"`
	ProductSKU    string `json:"product_sku"`
	Status        string `json:"status"`
	WarehouseCode string `json:"warehouse_code"`
	Notes         string `json:"notes"`
	ArtacomUser   string `json:"artacom_user"` // external actor who last touched the record
}

// Fetcher is the outbound port to the partner API. The concrete
// implementation lives in infrastructure/artacom; tests inject a fake.
type Fetcher interface {
	FetchInventory(ctx context.Context) ([]Record, error)
}
