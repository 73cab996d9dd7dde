package services

import (
	"context"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
)

// SKUReaderSvc defines read operations for SKUs
type SKUReaderSvc interface {
	// GetSKUByID retrieves a SKU by ID.
	GetSKUByID(ctx context.Context, skuID string) (*domain.SKU, error)

	// ListSKUs retrieves SKUs matching the params.
	ListSKUs(ctx context.Context, params dto.ListSKUsParams) ([]domain.SKU, error)
}

// SKUWriterSvc defines write operations for SKUs
type SKUWriterSvc interface {
	// CreateSKU registers a new SKU and computes its final price from the
	// owning partner's formula.
	CreateSKU(ctx context.Context, req dto.CreateSKURequest, creatorUserID string) (*domain.SKU, error)

	// UpdateSKU applies the allowed updates to a SKU, re-deriving the final
	// price when the base price changes.
	UpdateSKU(ctx context.Context, skuID string, req dto.UpdateSKURequest, updaterUserID string) (*domain.SKU, error)

	// DeactivateSKU marks a SKU inactive.
	DeactivateSKU(ctx context.Context, skuID string, updaterUserID string) error

	// RecalculateFinalPrices re-derives final prices for every priceable SKU
	// in scope, returning the number updated.
	RecalculateFinalPrices(ctx context.Context, req dto.RecalculatePricesRequest, updaterUserID string) (int, error)
}

// SKUSvcFacade combines all SKU-related service interfaces
type SKUSvcFacade interface {
	SKUReaderSvc
	SKUWriterSvc
}
