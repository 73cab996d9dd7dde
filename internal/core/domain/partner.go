package domain

import (
	"github.com/bazaryar/bazaryar_backend/internal/core/pricing"
	"github.com/shopspring/decimal"
)

// PartnerType classifies a business partner in the supply chain.
type PartnerType string

const (
	PartnerSupplier     PartnerType = "supplier"
	PartnerDistributor  PartnerType = "distributor"
	PartnerRetailer     PartnerType = "retailer"
	PartnerManufacturer PartnerType = "manufacturer"
	PartnerWholesaler   PartnerType = "wholesaler"
)

// IsValid reports whether t is one of the known partner types.
func (t PartnerType) IsValid() bool {
	switch t {
	case PartnerSupplier, PartnerDistributor, PartnerRetailer, PartnerManufacturer, PartnerWholesaler:
		return true
	}
	return false
}

// Partner is a business entity products are sourced from. It carries the
// pricing configuration applied to its SKUs and a running debt balance in
// Toman that settlements pay down.
type Partner struct {
	PartnerID    string      `json:"partnerID"` // Primary Key (UUID)
	Name         string      `json:"name"`
	Type         PartnerType `json:"type"`
	ContactEmail string      `json:"contactEmail,omitempty"`
	ContactPhone string      `json:"contactPhone,omitempty"`
	Address      string      `json:"address,omitempty"`
	Description  string      `json:"description,omitempty"`

	// Where the partner sells: telegram, instagram, basalam, website, ...
	Platform        string `json:"platform,omitempty"`
	PlatformAddress string `json:"platformAddress,omitempty"`

	// Financials (Toman).
	CreditLimit          decimal.Decimal `json:"creditLimit"`
	CurrentDebt          decimal.Decimal `json:"currentDebt"`
	PaymentTerms         string          `json:"paymentTerms,omitempty"`
	SettlementPeriodDays int             `json:"settlementPeriodDays"`

	// Pricing configuration applied to this partner's SKUs.
	ProfitPercentage decimal.Decimal `json:"profitPercentage"`
	FixedAmount      decimal.Decimal `json:"fixedAmount"`
	PriceEndingDigit int64           `json:"priceEndingDigit"`

	IsActive bool `json:"isActive"`
	AuditFields
}

// PricingFormula returns the partner's pricing configuration as an engine formula.
func (p Partner) PricingFormula() pricing.Formula {
	return pricing.Formula{
		ProfitPercentage: p.ProfitPercentage,
		FixedAmount:      p.FixedAmount,
		EndingDigit:      p.PriceEndingDigit,
	}
}
