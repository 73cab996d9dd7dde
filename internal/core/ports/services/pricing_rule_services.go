package services

import (
	"context"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
)

// PricingRuleReaderSvc defines read operations for pricing rules
type PricingRuleReaderSvc interface {
	// GetRuleByID retrieves a pricing rule by ID.
	GetRuleByID(ctx context.Context, ruleID string) (*domain.PricingRule, error)

	// ListRulesByPartner retrieves a partner's pricing rules.
	ListRulesByPartner(ctx context.Context, partnerID string, activeOnly bool) ([]domain.PricingRule, error)
}

// PricingRuleWriterSvc defines write operations for pricing rules
type PricingRuleWriterSvc interface {
	// CreateRule attaches a new pricing rule to a partner.
	CreateRule(ctx context.Context, partnerID string, req dto.CreatePricingRuleRequest, creatorUserID string) (*domain.PricingRule, error)

	// UpdateRule applies the allowed updates to a pricing rule.
	UpdateRule(ctx context.Context, ruleID string, req dto.UpdatePricingRuleRequest, updaterUserID string) (*domain.PricingRule, error)

	// DeleteRule removes a pricing rule.
	DeleteRule(ctx context.Context, ruleID string) error
}

// PricingRuleSvcFacade combines all pricing-rule-related service interfaces
type PricingRuleSvcFacade interface {
	PricingRuleReaderSvc
	PricingRuleWriterSvc
}
