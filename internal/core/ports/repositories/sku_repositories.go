package repositories

import (
	"context"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SKUReader defines read operations for SKU data
type SKUReader interface {
	// FindSKUByID retrieves a SKU by its ID.
	FindSKUByID(ctx context.Context, skuID string) (*domain.SKU, error)

	// FindSKUByCode retrieves a SKU by its unique code.
	FindSKUByCode(ctx context.Context, skuCode string) (*domain.SKU, error)

	// ListSKUs retrieves SKUs with limit/offset pagination, optionally scoped
	// to one product.
	ListSKUs(ctx context.Context, productID string, limit int, offset int) ([]domain.SKU, error)

	// ListPriceableSKUs retrieves SKUs that have a base price and whose product
	// belongs to a partner, optionally scoped to one product. Used for bulk
	// re-pricing.
	ListPriceableSKUs(ctx context.Context, productID string) ([]domain.SKU, error)
}

// SKUWriter defines write operations for SKU data
type SKUWriter interface {
	// SaveSKU persists a new SKU.
	SaveSKU(ctx context.Context, sku domain.SKU) error

	// UpdateSKU persists changes to an existing SKU.
	UpdateSKU(ctx context.Context, sku domain.SKU) error

	// UpdateSKUFinalPrice persists a recomputed final price for one SKU.
	UpdateSKUFinalPrice(ctx context.Context, skuID string, finalPrice decimal.Decimal, updatedBy string) error

	// DeleteSKU removes a SKU.
	DeleteSKU(ctx context.Context, skuID string) error
}

// SKURepositoryFacade combines all SKU-related repository interfaces
type SKURepositoryFacade interface {
	SKUReader
	SKUWriter
}
