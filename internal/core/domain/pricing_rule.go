package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingRuleType determines how a rule changes the running price.
type PricingRuleType string

const (
	// RulePercentage adds value% to the running price (negative for a discount).
	RulePercentage PricingRuleType = "percentage"
	// RuleFixedAmount adds a flat amount to the running price.
	RuleFixedAmount PricingRuleType = "fixed_amount"
	// RuleCustom is reserved; applying it leaves the price unchanged.
	RuleCustom PricingRuleType = "custom"
)

// PricingRule is a partner-scoped price adjustment layered on top of the base
// formula for campaigns and volume discounts. Rules are applied in descending
// priority order.
type PricingRule struct {
	RuleID    string `json:"ruleID"`    // Primary Key (UUID)
	PartnerID string `json:"partnerID"` // FK -> partners
	RuleName  string `json:"ruleName"`

	RuleType  PricingRuleType `json:"ruleType"`
	RuleValue decimal.Decimal `json:"ruleValue"` // percent or Toman depending on type

	MinQuantity    int        `json:"minQuantity"`
	MaxQuantity    *int       `json:"maxQuantity,omitempty"`    // nil = unbounded
	CategoryFilter string     `json:"categoryFilter,omitempty"` // empty = all categories
	Priority       int        `json:"priority"`
	IsActive       bool       `json:"isActive"`
	ValidFrom      time.Time  `json:"validFrom"`
	ValidUntil     *time.Time `json:"validUntil,omitempty"` // nil = open-ended
	AuditFields
}

// IsApplicable reports whether the rule covers the given moment, quantity and
// product category.
func (r PricingRule) IsApplicable(at time.Time, quantity int, category string) bool {
	if !r.IsActive {
		return false
	}
	if at.Before(r.ValidFrom) {
		return false
	}
	if r.ValidUntil != nil && at.After(*r.ValidUntil) {
		return false
	}
	if quantity < r.MinQuantity {
		return false
	}
	if r.MaxQuantity != nil && quantity > *r.MaxQuantity {
		return false
	}
	if r.CategoryFilter != "" && r.CategoryFilter != category {
		return false
	}
	return true
}

var oneHundred = decimal.NewFromInt(100)

// Apply returns the price after this rule. Unknown rule types pass the price
// through untouched.
func (r PricingRule) Apply(price decimal.Decimal) decimal.Decimal {
	switch r.RuleType {
	case RulePercentage:
		multiplier := decimal.NewFromInt(1).Add(r.RuleValue.Div(oneHundred))
		return price.Mul(multiplier)
	case RuleFixedAmount:
		return price.Add(r.RuleValue)
	default:
		return price
	}
}
