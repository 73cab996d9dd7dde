package domain

import "github.com/shopspring/decimal"

// Dimensions describes a SKU's physical size in centimeters.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SKU is a priceable, stockable product variant. BasePrice is what the partner
// charges; FinalPrice is what the panel sells at, computed through the pricing
// engine from the owning partner's formula.
type SKU struct {
	SKUID     string `json:"skuID"`     // Primary Key (UUID)
	ProductID string `json:"productID"` // FK -> products
	SKUCode   string `json:"skuCode"`   // Unique

	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`

	BasePrice  *decimal.Decimal `json:"basePrice,omitempty"`  // Toman, nil until the partner quotes
	FinalPrice *decimal.Decimal `json:"finalPrice,omitempty"` // Toman, nil until priceable
	Inventory  int              `json:"inventory"`
	Link       string           `json:"link,omitempty"`

	Weight     *decimal.Decimal `json:"weight,omitempty"` // kg
	Dimensions *Dimensions      `json:"dimensions,omitempty"`
	IsActive   bool             `json:"isActive"`
	AuditFields
}
