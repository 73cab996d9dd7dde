package dto

import (
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DimensionsPayload mirrors domain.Dimensions for requests and responses.
type DimensionsPayload struct {
	Length float64 `json:"length" binding:"required,gt=0"`
	Width  float64 `json:"width" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
}

// CreateSKURequest defines the payload for creating a SKU. SKUCode is
// generated when omitted; the final price is always computed server-side.
type CreateSKURequest struct {
	ProductID string `json:"productID" binding:"required,uuid"`
	SKUCode   string `json:"skuCode" binding:"omitempty,max=255"`

	Size  string `json:"size" binding:"omitempty,max=100"`
	Color string `json:"color" binding:"omitempty,max=100"`

	BasePrice *decimal.Decimal `json:"basePrice"`
	Inventory int              `json:"inventory" binding:"min=0"`
	Link      string           `json:"link" binding:"omitempty,max=500"`

	Weight     *decimal.Decimal   `json:"weight"`
	Dimensions *DimensionsPayload `json:"dimensions"`
}

// UpdateSKURequest defines the fields that can be changed on a SKU.
type UpdateSKURequest struct {
	Size  *string `json:"size" binding:"omitempty,max=100"`
	Color *string `json:"color" binding:"omitempty,max=100"`

	BasePrice *decimal.Decimal `json:"basePrice"`
	Inventory *int             `json:"inventory" binding:"omitempty,min=0"`
	Link      *string          `json:"link" binding:"omitempty,max=500"`

	Weight     *decimal.Decimal   `json:"weight"`
	Dimensions *DimensionsPayload `json:"dimensions"`
	IsActive   *bool              `json:"isActive"`
}

// ListSKUsParams defines query parameters for listing SKUs.
type ListSKUsParams struct {
	ProductID string `form:"productID" binding:"omitempty,uuid"`
	Limit     int    `form:"limit,default=50"`
	Offset    int    `form:"offset,default=0"`
}

// RecalculatePricesRequest scopes a bulk re-pricing run. Empty = all SKUs.
type RecalculatePricesRequest struct {
	ProductID string `json:"productID" binding:"omitempty,uuid"`
}

// RecalculatePricesResponse reports how many SKUs were re-priced.
type RecalculatePricesResponse struct {
	UpdatedCount int `json:"updatedCount"`
}

// SKUResponse is the API representation of a SKU. FinalPriceWords and
// FinalPriceDisplay carry the Persian helper text shown next to the price
// inputs in the panel.
type SKUResponse struct {
	SKUID     string `json:"skuID"`
	ProductID string `json:"productID"`
	SKUCode   string `json:"skuCode"`

	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`

	BasePrice         *decimal.Decimal `json:"basePrice,omitempty"`
	FinalPrice        *decimal.Decimal `json:"finalPrice,omitempty"`
	FinalPriceWords   string           `json:"finalPriceWords,omitempty"`
	FinalPriceDisplay string           `json:"finalPriceDisplay,omitempty"`
	Inventory         int              `json:"inventory"`
	Link              string           `json:"link,omitempty"`

	Weight     *decimal.Decimal   `json:"weight,omitempty"`
	Dimensions *DimensionsPayload `json:"dimensions,omitempty"`
	IsActive   bool               `json:"isActive"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// ToSKUResponse converts a domain.SKU to its API representation. The price
// helper strings are produced by the service.
func ToSKUResponse(s *domain.SKU, priceWords string, priceDisplay string) SKUResponse {
	resp := SKUResponse{
		SKUID:             s.SKUID,
		ProductID:         s.ProductID,
		SKUCode:           s.SKUCode,
		Size:              s.Size,
		Color:             s.Color,
		BasePrice:         s.BasePrice,
		FinalPrice:        s.FinalPrice,
		FinalPriceWords:   priceWords,
		FinalPriceDisplay: priceDisplay,
		Inventory:         s.Inventory,
		Link:              s.Link,
		Weight:            s.Weight,
		IsActive:          s.IsActive,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.LastUpdatedAt,
	}
	if s.Dimensions != nil {
		resp.Dimensions = &DimensionsPayload{
			Length: s.Dimensions.Length,
			Width:  s.Dimensions.Width,
			Height: s.Dimensions.Height,
		}
	}
	return resp
}
