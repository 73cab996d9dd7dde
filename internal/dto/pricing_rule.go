package dto

import (
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePricingRuleRequest defines the payload for adding a rule to a partner.
type CreatePricingRuleRequest struct {
	RuleName  string          `json:"ruleName" binding:"required,max=255"`
	RuleType  string          `json:"ruleType" binding:"required,oneof=percentage fixed_amount custom"`
	RuleValue decimal.Decimal `json:"ruleValue"`

	MinQuantity    *int       `json:"minQuantity" binding:"omitempty,min=1"`
	MaxQuantity    *int       `json:"maxQuantity" binding:"omitempty,min=1"`
	CategoryFilter string     `json:"categoryFilter" binding:"omitempty,max=255"`
	Priority       int        `json:"priority"`
	ValidFrom      *time.Time `json:"validFrom"`
	ValidUntil     *time.Time `json:"validUntil"`
}

// UpdatePricingRuleRequest defines the fields that can be changed on a rule.
type UpdatePricingRuleRequest struct {
	RuleName  *string          `json:"ruleName" binding:"omitempty,max=255"`
	RuleType  *string          `json:"ruleType" binding:"omitempty,oneof=percentage fixed_amount custom"`
	RuleValue *decimal.Decimal `json:"ruleValue"`

	MinQuantity    *int       `json:"minQuantity" binding:"omitempty,min=1"`
	MaxQuantity    *int       `json:"maxQuantity" binding:"omitempty,min=1"`
	CategoryFilter *string    `json:"categoryFilter" binding:"omitempty,max=255"`
	Priority       *int       `json:"priority"`
	IsActive       *bool      `json:"isActive"`
	ValidFrom      *time.Time `json:"validFrom"`
	ValidUntil     *time.Time `json:"validUntil"`
}

// PricingRuleResponse is the API representation of a pricing rule.
type PricingRuleResponse struct {
	RuleID    string          `json:"ruleID"`
	PartnerID string          `json:"partnerID"`
	RuleName  string          `json:"ruleName"`
	RuleType  string          `json:"ruleType"`
	RuleValue decimal.Decimal `json:"ruleValue"`

	MinQuantity    int        `json:"minQuantity"`
	MaxQuantity    *int       `json:"maxQuantity,omitempty"`
	CategoryFilter string     `json:"categoryFilter,omitempty"`
	Priority       int        `json:"priority"`
	IsActive       bool       `json:"isActive"`
	ValidFrom      time.Time  `json:"validFrom"`
	ValidUntil     *time.Time `json:"validUntil,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ToPricingRuleResponse converts a domain.PricingRule to its API representation.
func ToPricingRuleResponse(r *domain.PricingRule) PricingRuleResponse {
	return PricingRuleResponse{
		RuleID:         r.RuleID,
		PartnerID:      r.PartnerID,
		RuleName:       r.RuleName,
		RuleType:       string(r.RuleType),
		RuleValue:      r.RuleValue,
		MinQuantity:    r.MinQuantity,
		MaxQuantity:    r.MaxQuantity,
		CategoryFilter: r.CategoryFilter,
		Priority:       r.Priority,
		IsActive:       r.IsActive,
		ValidFrom:      r.ValidFrom,
		ValidUntil:     r.ValidUntil,
		CreatedAt:      r.CreatedAt,
	}
}
