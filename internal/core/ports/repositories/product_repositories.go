package repositories

import (
	"context"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
)

// ProductListFilter narrows ListProducts results. Zero values mean "no filter".
type ProductListFilter struct {
	PartnerID  string
	Category   string
	ActiveOnly bool
}

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product by its ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves products matching the filter with limit/offset pagination.
	ListProducts(ctx context.Context, filter ProductListFilter, limit int, offset int) ([]domain.Product, error)

	// ListVariantsByProduct retrieves all variants of a product.
	ListVariantsByProduct(ctx context.Context, productID string) ([]domain.Variant, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct persists changes to an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// SaveVariant persists a new variant of a product.
	SaveVariant(ctx context.Context, variant domain.Variant) error

	// DeleteVariant removes a variant.
	DeleteVariant(ctx context.Context, variantID string) error

	// DeleteProduct removes a product and, via FK cascade, its variants and SKUs.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
