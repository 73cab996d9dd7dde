package services

import (
	"context"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
)

// ProductReaderSvc defines read operations for products
type ProductReaderSvc interface {
	// GetProductByID retrieves a product by ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves products matching the params.
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)

	// ListVariants retrieves the variants of a product.
	ListVariants(ctx context.Context, productID string) ([]domain.Variant, error)
}

// ProductWriterSvc defines write operations for products
type ProductWriterSvc interface {
	// CreateProduct registers a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// UpdateProduct applies the allowed updates to a product.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error)

	// DeactivateProduct marks a product inactive.
	DeactivateProduct(ctx context.Context, productID string, updaterUserID string) error

	// AddVariant attaches a variant to a product.
	AddVariant(ctx context.Context, productID string, req dto.CreateVariantRequest, creatorUserID string) (*domain.Variant, error)

	// RemoveVariant detaches a variant from its product.
	RemoveVariant(ctx context.Context, variantID string) error
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
