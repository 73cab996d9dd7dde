package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/apperrors"
	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	portsrepo "github.com/bazaryar/bazaryar_backend/internal/core/ports/repositories"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
	"github.com/google/uuid"
)

// productService implements the ProductSvcFacade interface
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	partnerRepo portsrepo.PartnerReader
}

// NewProductService creates a new product service with the provided dependencies
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, partnerRepo portsrepo.PartnerReader) portssvc.ProductSvcFacade {
	return &productService{
		productRepo: productRepo,
		partnerRepo: partnerRepo,
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// GetProductByID retrieves a product by ID.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product by ID", slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

// ListProducts retrieves products matching the params.
func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	filter := portsrepo.ProductListFilter{
		PartnerID:  params.PartnerID,
		Category:   params.Category,
		ActiveOnly: params.ActiveOnly,
	}

	products, err := s.productRepo.ListProducts(ctx, filter, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, err
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

// ListVariants retrieves the variants of a product.
func (s *productService) ListVariants(ctx context.Context, productID string) ([]domain.Variant, error) {
	variants, err := s.productRepo.ListVariantsByProduct(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list variants", slog.String("product_id", productID))
		return nil, err
	}
	if variants == nil {
		return []domain.Variant{}, nil
	}
	return variants, nil
}

// CreateProduct registers a new product. A referenced partner must exist.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	if req.PartnerID != "" {
		if _, err := s.partnerRepo.FindPartnerByID(ctx, req.PartnerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("partner %s: %w", req.PartnerID, apperrors.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to verify partner: %w", err)
		}
	}

	now := time.Now()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Brand:       req.Brand,
		PartnerID:   req.PartnerID,
		Images:      req.Images,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_name", req.Name))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

// UpdateProduct applies the allowed updates to a product.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.PartnerID != nil {
		if *req.PartnerID != "" {
			if _, err := s.partnerRepo.FindPartnerByID(ctx, *req.PartnerID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("partner %s: %w", *req.PartnerID, apperrors.ErrNotFound)
				}
				return nil, fmt.Errorf("failed to verify partner: %w", err)
			}
		}
		product.PartnerID = *req.PartnerID
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = updaterUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// DeactivateProduct marks a product inactive.
func (s *productService) DeactivateProduct(ctx context.Context, productID string, updaterUserID string) error {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return err
	}

	product.IsActive = false
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = updaterUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to deactivate product", slog.String("product_id", productID))
		return fmt.Errorf("failed to deactivate product: %w", err)
	}

	s.LogInfo(ctx, "Product deactivated", slog.String("product_id", productID))
	return nil
}

// AddVariant attaches a variant to a product.
func (s *productService) AddVariant(ctx context.Context, productID string, req dto.CreateVariantRequest, creatorUserID string) (*domain.Variant, error) {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return nil, err
	}

	now := time.Now()
	variant := domain.Variant{
		VariantID: uuid.NewString(),
		ProductID: productID,
		Name:      req.Name,
		Value:     req.Value,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveVariant(ctx, variant); err != nil {
		s.LogError(ctx, err, "Failed to save variant", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to save variant: %w", err)
	}

	return &variant, nil
}

// RemoveVariant detaches a variant from its product.
func (s *productService) RemoveVariant(ctx context.Context, variantID string) error {
	if err := s.productRepo.DeleteVariant(ctx, variantID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete variant", slog.String("variant_id", variantID))
		}
		return err
	}
	return nil
}
