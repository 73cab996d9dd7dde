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

// pricingRuleService implements the PricingRuleSvcFacade interface
type pricingRuleService struct {
	BaseService
	ruleRepo    portsrepo.PricingRuleRepositoryFacade
	partnerRepo portsrepo.PartnerReader
}

// NewPricingRuleService creates a new pricing rule service with the provided dependencies
func NewPricingRuleService(ruleRepo portsrepo.PricingRuleRepositoryFacade, partnerRepo portsrepo.PartnerReader) portssvc.PricingRuleSvcFacade {
	return &pricingRuleService{
		ruleRepo:    ruleRepo,
		partnerRepo: partnerRepo,
	}
}

var _ portssvc.PricingRuleSvcFacade = (*pricingRuleService)(nil)

// GetRuleByID retrieves a pricing rule by ID.
func (s *pricingRuleService) GetRuleByID(ctx context.Context, ruleID string) (*domain.PricingRule, error) {
	rule, err := s.ruleRepo.FindPricingRuleByID(ctx, ruleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find pricing rule by ID", slog.String("rule_id", ruleID))
		}
		return nil, err
	}
	return rule, nil
}

// ListRulesByPartner retrieves a partner's pricing rules.
func (s *pricingRuleService) ListRulesByPartner(ctx context.Context, partnerID string, activeOnly bool) ([]domain.PricingRule, error) {
	rules, err := s.ruleRepo.ListPricingRulesByPartner(ctx, partnerID, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pricing rules", slog.String("partner_id", partnerID))
		return nil, err
	}
	if rules == nil {
		return []domain.PricingRule{}, nil
	}
	return rules, nil
}

// CreateRule attaches a new pricing rule to a partner.
func (s *pricingRuleService) CreateRule(ctx context.Context, partnerID string, req dto.CreatePricingRuleRequest, creatorUserID string) (*domain.PricingRule, error) {
	if _, err := s.partnerRepo.FindPartnerByID(ctx, partnerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("partner %s: %w", partnerID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to verify partner: %w", err)
	}

	ruleType := domain.PricingRuleType(req.RuleType)
	if err := validateQuantityBounds(req.MinQuantity, req.MaxQuantity); err != nil {
		return nil, err
	}

	now := time.Now()
	rule := domain.PricingRule{
		RuleID:         uuid.NewString(),
		PartnerID:      partnerID,
		RuleName:       req.RuleName,
		RuleType:       ruleType,
		RuleValue:      req.RuleValue,
		MinQuantity:    1,
		MaxQuantity:    req.MaxQuantity,
		CategoryFilter: req.CategoryFilter,
		Priority:       req.Priority,
		IsActive:       true,
		ValidFrom:      now,
		ValidUntil:     req.ValidUntil,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.MinQuantity != nil {
		rule.MinQuantity = *req.MinQuantity
	}
	if req.ValidFrom != nil {
		rule.ValidFrom = *req.ValidFrom
	}

	if rule.ValidUntil != nil && rule.ValidUntil.Before(rule.ValidFrom) {
		return nil, fmt.Errorf("validUntil cannot precede validFrom: %w", apperrors.ErrValidation)
	}

	if err := s.ruleRepo.SavePricingRule(ctx, rule); err != nil {
		s.LogError(ctx, err, "Failed to save pricing rule", slog.String("partner_id", partnerID))
		return nil, fmt.Errorf("failed to save pricing rule: %w", err)
	}

	s.LogInfo(ctx, "Pricing rule created",
		slog.String("rule_id", rule.RuleID),
		slog.String("partner_id", partnerID),
		slog.String("rule_type", string(rule.RuleType)))
	return &rule, nil
}

// UpdateRule applies the allowed updates to a pricing rule.
func (s *pricingRuleService) UpdateRule(ctx context.Context, ruleID string, req dto.UpdatePricingRuleRequest, updaterUserID string) (*domain.PricingRule, error) {
	rule, err := s.ruleRepo.FindPricingRuleByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}

	if req.RuleName != nil {
		rule.RuleName = *req.RuleName
	}
	if req.RuleType != nil {
		rule.RuleType = domain.PricingRuleType(*req.RuleType)
	}
	if req.RuleValue != nil {
		rule.RuleValue = *req.RuleValue
	}
	if req.MinQuantity != nil {
		rule.MinQuantity = *req.MinQuantity
	}
	if req.MaxQuantity != nil {
		rule.MaxQuantity = req.MaxQuantity
	}
	if req.CategoryFilter != nil {
		rule.CategoryFilter = *req.CategoryFilter
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	if req.ValidFrom != nil {
		rule.ValidFrom = *req.ValidFrom
	}
	if req.ValidUntil != nil {
		rule.ValidUntil = req.ValidUntil
	}

	if err := validateQuantityBounds(&rule.MinQuantity, rule.MaxQuantity); err != nil {
		return nil, err
	}
	if rule.ValidUntil != nil && rule.ValidUntil.Before(rule.ValidFrom) {
		return nil, fmt.Errorf("validUntil cannot precede validFrom: %w", apperrors.ErrValidation)
	}

	rule.LastUpdatedAt = time.Now()
	rule.LastUpdatedBy = updaterUserID

	if err := s.ruleRepo.UpdatePricingRule(ctx, *rule); err != nil {
		s.LogError(ctx, err, "Failed to update pricing rule", slog.String("rule_id", ruleID))
		return nil, fmt.Errorf("failed to update pricing rule: %w", err)
	}

	return rule, nil
}

// DeleteRule disables a pricing rule. Rules are kept as rows so historical
// prices stay explainable.
func (s *pricingRuleService) DeleteRule(ctx context.Context, ruleID string) error {
	if err := s.ruleRepo.MarkPricingRuleInactive(ctx, ruleID, "system"); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to disable pricing rule", slog.String("rule_id", ruleID))
		}
		return err
	}

	s.LogInfo(ctx, "Pricing rule disabled", slog.String("rule_id", ruleID))
	return nil
}

func validateQuantityBounds(minQuantity *int, maxQuantity *int) error {
	if minQuantity == nil || maxQuantity == nil {
		return nil
	}
	if *maxQuantity < *minQuantity {
		return fmt.Errorf("maxQuantity cannot be below minQuantity: %w", apperrors.ErrValidation)
	}
	return nil
}
