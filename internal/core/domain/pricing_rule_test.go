package domain_test

import (
	"testing"
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int              { return &i }
func timePtr(t time.Time) *time.Time { return &t }

func TestPricingRule_IsApplicable(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	base := domain.PricingRule{
		IsActive:    true,
		MinQuantity: 1,
		ValidFrom:   now.AddDate(0, -1, 0),
	}

	tests := []struct {
		name     string
		mutate   func(r *domain.PricingRule)
		quantity int
		category string
		want     bool
	}{
		{"open rule matches", func(r *domain.PricingRule) {}, 1, "", true},
		{"inactive rule never matches", func(r *domain.PricingRule) { r.IsActive = false }, 1, "", false},
		{"not yet valid", func(r *domain.PricingRule) { r.ValidFrom = now.AddDate(0, 1, 0) }, 1, "", false},
		{"expired", func(r *domain.PricingRule) { r.ValidUntil = timePtr(now.AddDate(0, 0, -1)) }, 1, "", false},
		{"still within validity window", func(r *domain.PricingRule) { r.ValidUntil = timePtr(now.AddDate(0, 0, 1)) }, 1, "", true},
		{"below minimum quantity", func(r *domain.PricingRule) { r.MinQuantity = 10 }, 5, "", false},
		{"above maximum quantity", func(r *domain.PricingRule) { r.MaxQuantity = intPtr(3) }, 5, "", false},
		{"within quantity bounds", func(r *domain.PricingRule) { r.MinQuantity = 2; r.MaxQuantity = intPtr(10) }, 5, "", true},
		{"category filter mismatch", func(r *domain.PricingRule) { r.CategoryFilter = "پوشاک" }, 1, "کفش", false},
		{"category filter match", func(r *domain.PricingRule) { r.CategoryFilter = "پوشاک" }, 1, "پوشاک", true},
		{"empty filter covers any category", func(r *domain.PricingRule) {}, 1, "کفش", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := base
			tt.mutate(&rule)
			assert.Equal(t, tt.want, rule.IsApplicable(now, tt.quantity, tt.category))
		})
	}
}

func TestPricingRule_Apply(t *testing.T) {
	price := decimal.NewFromInt(1000)

	percentage := domain.PricingRule{RuleType: domain.RulePercentage, RuleValue: decimal.NewFromInt(10)}
	assert.True(t, percentage.Apply(price).Equal(decimal.NewFromInt(1100)))

	discount := domain.PricingRule{RuleType: domain.RulePercentage, RuleValue: decimal.NewFromInt(-10)}
	assert.True(t, discount.Apply(price).Equal(decimal.NewFromInt(900)))

	fixed := domain.PricingRule{RuleType: domain.RuleFixedAmount, RuleValue: decimal.NewFromInt(250)}
	assert.True(t, fixed.Apply(price).Equal(decimal.NewFromInt(1250)))

	custom := domain.PricingRule{RuleType: domain.RuleCustom, RuleValue: decimal.NewFromInt(999)}
	assert.True(t, custom.Apply(price).Equal(price))
}
