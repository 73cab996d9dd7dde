package repositories

import (
	"context"
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
)

// PricingRuleReader defines read operations for pricing rule data
type PricingRuleReader interface {
	// FindPricingRuleByID retrieves a rule by its ID.
	FindPricingRuleByID(ctx context.Context, ruleID string) (*domain.PricingRule, error)

	// ListPricingRulesByPartner retrieves a partner's rules ordered by priority
	// descending, then creation time descending. activeOnly excludes disabled rules.
	ListPricingRulesByPartner(ctx context.Context, partnerID string, activeOnly bool) ([]domain.PricingRule, error)

	// ListApplicableRules retrieves the partner's active rules valid at the given
	// moment for the quantity and category, ordered by priority descending.
	ListApplicableRules(ctx context.Context, partnerID string, at time.Time, quantity int, category string) ([]domain.PricingRule, error)
}

// PricingRuleWriter defines write operations for pricing rule data
type PricingRuleWriter interface {
	// SavePricingRule persists a new rule.
	SavePricingRule(ctx context.Context, rule domain.PricingRule) error

	// UpdatePricingRule persists changes to an existing rule.
	UpdatePricingRule(ctx context.Context, rule domain.PricingRule) error

	// MarkPricingRuleInactive disables a rule (rules are never hard-deleted so
	// that historical prices stay explainable).
	MarkPricingRuleInactive(ctx context.Context, ruleID string, updatedBy string) error
}

// PricingRuleRepositoryFacade combines all pricing-rule repository interfaces
type PricingRuleRepositoryFacade interface {
	PricingRuleReader
	PricingRuleWriter
}
