package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/apperrors"
	portsrepo "github.com/bazaryar/bazaryar_backend/internal/core/ports/repositories"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/internal/core/pricing"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
	"github.com/bazaryar/bazaryar_backend/internal/utils/persiannum"
	"github.com/shopspring/decimal"
)

// pricingService implements the PricingSvcFacade interface
type pricingService struct {
	BaseService
	partnerRepo portsrepo.PartnerReader
	ruleRepo    portsrepo.PricingRuleReader
}

// NewPricingService creates a new pricing service with the provided dependencies
func NewPricingService(partnerRepo portsrepo.PartnerReader, ruleRepo portsrepo.PricingRuleReader) portssvc.PricingSvcFacade {
	return &pricingService{
		partnerRepo: partnerRepo,
		ruleRepo:    ruleRepo,
	}
}

var _ portssvc.PricingSvcFacade = (*pricingService)(nil)

// PreviewPrice runs a base price through the partner's formula and any
// applicable pricing rules without persisting anything. Rules run on the
// marked-up price in descending priority order; the partner's ending digit is
// applied after the rules so adjusted prices keep the ending convention.
func (s *pricingService) PreviewPrice(ctx context.Context, req dto.PricePreviewRequest) (*dto.PricePreviewResponse, error) {
	if !req.BasePrice.IsPositive() {
		return nil, fmt.Errorf("base price must be positive: %w", apperrors.ErrValidation)
	}

	partner, err := s.partnerRepo.FindPartnerByID(ctx, req.PartnerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load partner for price preview", slog.String("partner_id", req.PartnerID))
		}
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	rules, err := s.ruleRepo.ListApplicableRules(ctx, req.PartnerID, time.Now(), quantity, req.Category)
	if err != nil {
		s.LogError(ctx, err, "Failed to list applicable pricing rules", slog.String("partner_id", req.PartnerID))
		return nil, fmt.Errorf("failed to list applicable pricing rules: %w", err)
	}

	formula := partner.PricingFormula()

	var finalPrice decimal.Decimal
	var appliedRuleIDs []string
	if len(rules) == 0 {
		finalPrice = pricing.FinalPrice(req.BasePrice, formula)
	} else {
		// Mark up without the ending step, layer the rules, then round.
		markupOnly := pricing.Formula{
			ProfitPercentage: formula.ProfitPercentage,
			FixedAmount:      formula.FixedAmount,
		}
		finalPrice = pricing.FinalPrice(req.BasePrice, markupOnly)
		for _, rule := range rules {
			finalPrice = rule.Apply(finalPrice)
			appliedRuleIDs = append(appliedRuleIDs, rule.RuleID)
		}
		finalPrice = pricing.ApplyEnding(finalPrice, formula.EndingDigit)
	}

	return &dto.PricePreviewResponse{
		BasePrice:         req.BasePrice,
		FinalPrice:        finalPrice,
		FinalPriceWords:   persiannum.ToWords(finalPrice),
		FinalPriceDisplay: persiannum.FormatToman(finalPrice),
		AppliedRuleIDs:    appliedRuleIDs,
	}, nil
}
