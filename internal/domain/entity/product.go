package entity

import "time"

// Product categories for telecom field equipment.
const (
	CategoryActive  = "Active"  // powered devices: ONT, OLT, router
	CategoryPassive = "Passive" // fiber cable, splitter, ODP
	CategoryTool    = "Tool"    // splicer, OPM, toolkit
)

// Product represents an inventory SKU. The SKU is immutable identity once
// items or stock reference the product. Serialized units live in Item;
// bulk quantities per warehouse live in Stock.
type Product struct {
	ID        string
	SKU       string // unique
	Name      string
	Category  string // Active, Passive, Tool
	Unit      string // pcs, meter, roll, set
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidCategory reports whether c is one of the known product categories.
func ValidCategory(c string) bool {
	return c == CategoryActive || c == CategoryPassive || c == CategoryTool
}
