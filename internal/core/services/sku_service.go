package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/apperrors"
	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	portsrepo "github.com/bazaryar/bazaryar_backend/internal/core/ports/repositories"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/internal/core/pricing"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// skuService implements the SKUSvcFacade interface
type skuService struct {
	BaseService
	skuRepo     portsrepo.SKURepositoryFacade
	productRepo portsrepo.ProductReader
	partnerRepo portsrepo.PartnerReader
}

// NewSKUService creates a new SKU service with the provided dependencies
func NewSKUService(
	skuRepo portsrepo.SKURepositoryFacade,
	productRepo portsrepo.ProductReader,
	partnerRepo portsrepo.PartnerReader,
) portssvc.SKUSvcFacade {
	return &skuService{
		skuRepo:     skuRepo,
		productRepo: productRepo,
		partnerRepo: partnerRepo,
	}
}

var _ portssvc.SKUSvcFacade = (*skuService)(nil)

// GetSKUByID retrieves a SKU by ID.
func (s *skuService) GetSKUByID(ctx context.Context, skuID string) (*domain.SKU, error) {
	sku, err := s.skuRepo.FindSKUByID(ctx, skuID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find SKU by ID", slog.String("sku_id", skuID))
		}
		return nil, err
	}
	return sku, nil
}

// ListSKUs retrieves SKUs matching the params.
func (s *skuService) ListSKUs(ctx context.Context, params dto.ListSKUsParams) ([]domain.SKU, error) {
	skus, err := s.skuRepo.ListSKUs(ctx, params.ProductID, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list SKUs")
		return nil, err
	}
	if skus == nil {
		return []domain.SKU{}, nil
	}
	return skus, nil
}

// CreateSKU registers a new SKU and computes its final price from the owning
// partner's formula.
func (s *skuService) CreateSKU(ctx context.Context, req dto.CreateSKURequest, creatorUserID string) (*domain.SKU, error) {
	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("product %s: %w", req.ProductID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to verify product: %w", err)
	}

	if req.BasePrice != nil && !req.BasePrice.IsPositive() {
		return nil, fmt.Errorf("base price must be positive: %w", apperrors.ErrValidation)
	}

	skuCode := req.SKUCode
	if skuCode == "" {
		skuCode = generateSKUCode(product)
	}

	now := time.Now()
	sku := domain.SKU{
		SKUID:     uuid.NewString(),
		ProductID: req.ProductID,
		SKUCode:   skuCode,
		Size:      req.Size,
		Color:     req.Color,
		BasePrice: req.BasePrice,
		Inventory: req.Inventory,
		Link:      req.Link,
		Weight:    req.Weight,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.Dimensions != nil {
		sku.Dimensions = &domain.Dimensions{
			Length: req.Dimensions.Length,
			Width:  req.Dimensions.Width,
			Height: req.Dimensions.Height,
		}
	}

	if req.BasePrice != nil {
		finalPrice, err := s.computeFinalPrice(ctx, product.PartnerID, *req.BasePrice)
		if err != nil {
			return nil, err
		}
		sku.FinalPrice = &finalPrice
	}

	if err := s.skuRepo.SaveSKU(ctx, sku); err != nil {
		s.LogError(ctx, err, "Failed to save SKU", slog.String("sku_code", skuCode))
		return nil, fmt.Errorf("failed to save SKU: %w", err)
	}

	s.LogInfo(ctx, "SKU created", slog.String("sku_id", sku.SKUID), slog.String("sku_code", sku.SKUCode))
	return &sku, nil
}

// UpdateSKU applies the allowed updates to a SKU, re-deriving the final price
// when the base price changes.
func (s *skuService) UpdateSKU(ctx context.Context, skuID string, req dto.UpdateSKURequest, updaterUserID string) (*domain.SKU, error) {
	sku, err := s.skuRepo.FindSKUByID(ctx, skuID)
	if err != nil {
		return nil, err
	}

	if req.Size != nil {
		sku.Size = *req.Size
	}
	if req.Color != nil {
		sku.Color = *req.Color
	}
	if req.Inventory != nil {
		sku.Inventory = *req.Inventory
	}
	if req.Link != nil {
		sku.Link = *req.Link
	}
	if req.Weight != nil {
		sku.Weight = req.Weight
	}
	if req.Dimensions != nil {
		sku.Dimensions = &domain.Dimensions{
			Length: req.Dimensions.Length,
			Width:  req.Dimensions.Width,
			Height: req.Dimensions.Height,
		}
	}
	if req.IsActive != nil {
		sku.IsActive = *req.IsActive
	}

	if req.BasePrice != nil {
		if !req.BasePrice.IsPositive() {
			return nil, fmt.Errorf("base price must be positive: %w", apperrors.ErrValidation)
		}
		product, err := s.productRepo.FindProductByID(ctx, sku.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to load product for pricing: %w", err)
		}
		finalPrice, err := s.computeFinalPrice(ctx, product.PartnerID, *req.BasePrice)
		if err != nil {
			return nil, err
		}
		sku.BasePrice = req.BasePrice
		sku.FinalPrice = &finalPrice
	}

	sku.LastUpdatedAt = time.Now()
	sku.LastUpdatedBy = updaterUserID

	if err := s.skuRepo.UpdateSKU(ctx, *sku); err != nil {
		s.LogError(ctx, err, "Failed to update SKU", slog.String("sku_id", skuID))
		return nil, fmt.Errorf("failed to update SKU: %w", err)
	}

	return sku, nil
}

// DeactivateSKU marks a SKU inactive.
func (s *skuService) DeactivateSKU(ctx context.Context, skuID string, updaterUserID string) error {
	sku, err := s.skuRepo.FindSKUByID(ctx, skuID)
	if err != nil {
		return err
	}

	sku.IsActive = false
	sku.LastUpdatedAt = time.Now()
	sku.LastUpdatedBy = updaterUserID

	if err := s.skuRepo.UpdateSKU(ctx, *sku); err != nil {
		s.LogError(ctx, err, "Failed to deactivate SKU", slog.String("sku_id", skuID))
		return fmt.Errorf("failed to deactivate SKU: %w", err)
	}

	s.LogInfo(ctx, "SKU deactivated", slog.String("sku_id", skuID))
	return nil
}

// RecalculateFinalPrices re-derives final prices for every priceable SKU in
// scope. Runs after a partner's formula changes so the catalog catches up.
func (s *skuService) RecalculateFinalPrices(ctx context.Context, req dto.RecalculatePricesRequest, updaterUserID string) (int, error) {
	skus, err := s.skuRepo.ListPriceableSKUs(ctx, req.ProductID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list priceable SKUs")
		return 0, fmt.Errorf("failed to list priceable SKUs: %w", err)
	}

	// Partner formulas are looked up once per product, not once per SKU.
	partnerByProduct := make(map[string]string)
	formulaByPartner := make(map[string]pricing.Formula)

	updated := 0
	for i := range skus {
		sku := &skus[i]
		if sku.BasePrice == nil {
			continue
		}

		partnerID, ok := partnerByProduct[sku.ProductID]
		if !ok {
			product, err := s.productRepo.FindProductByID(ctx, sku.ProductID)
			if err != nil {
				s.LogError(ctx, err, "Failed to load product during recalculation", slog.String("sku_id", sku.SKUID))
				continue
			}
			partnerID = product.PartnerID
			partnerByProduct[sku.ProductID] = partnerID
		}

		var finalPrice decimal.Decimal
		if partnerID == "" {
			finalPrice = sku.BasePrice.Round(0)
		} else {
			formula, ok := formulaByPartner[partnerID]
			if !ok {
				partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
				if err != nil {
					if !errors.Is(err, apperrors.ErrNotFound) {
						s.LogError(ctx, err, "Failed to load partner during recalculation", slog.String("partner_id", partnerID))
						continue
					}
					// Partner is gone: the base price is the best price we have.
					formula = pricing.Formula{}
				} else {
					formula = partner.PricingFormula()
				}
				formulaByPartner[partnerID] = formula
			}
			finalPrice = pricing.FinalPrice(*sku.BasePrice, formula)
		}

		if sku.FinalPrice != nil && sku.FinalPrice.Equal(finalPrice) {
			continue
		}
		if err := s.skuRepo.UpdateSKUFinalPrice(ctx, sku.SKUID, finalPrice, updaterUserID); err != nil {
			s.LogError(ctx, err, "Failed to store recalculated price", slog.String("sku_id", sku.SKUID))
			continue
		}
		updated++
	}

	s.LogInfo(ctx, "Final prices recalculated",
		slog.Int("updated", updated),
		slog.Int("scanned", len(skus)))
	return updated, nil
}

// computeFinalPrice derives the selling price for a base price. A SKU whose
// product has no partner, or whose partner no longer exists, sells at the base
// price rounded to a whole Toman.
func (s *skuService) computeFinalPrice(ctx context.Context, partnerID string, basePrice decimal.Decimal) (decimal.Decimal, error) {
	if partnerID == "" {
		return basePrice.Round(0), nil
	}

	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return basePrice.Round(0), nil
		}
		return decimal.Zero, fmt.Errorf("failed to load partner for pricing: %w", err)
	}

	return pricing.FinalPrice(basePrice, partner.PricingFormula()), nil
}

// generateSKUCode builds a readable unique code from the product name and a
// random suffix, e.g. "SHIRT-3F2A9C01".
func generateSKUCode(product *domain.Product) string {
	prefix := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(product.Name), " ", "-"))
	if runes := []rune(prefix); len(runes) > 20 {
		prefix = string(runes[:20])
	}
	if prefix == "" {
		prefix = "SKU"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return prefix + "-" + suffix
}
