package dto

import (
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartnerRequest defines the payload for registering a partner.
// The partnertype validation is registered in the handlers package.
type CreatePartnerRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Type         string `json:"type" binding:"required,partnertype"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string `json:"contactPhone" binding:"omitempty,max=50"`
	Address      string `json:"address"`
	Description  string `json:"description"`

	Platform        string `json:"platform" binding:"omitempty,max=100"`
	PlatformAddress string `json:"platformAddress" binding:"omitempty,max=500"`

	CreditLimit          *decimal.Decimal `json:"creditLimit"`
	PaymentTerms         string           `json:"paymentTerms" binding:"omitempty,max=100"`
	SettlementPeriodDays *int             `json:"settlementPeriodDays" binding:"omitempty,min=1"`

	ProfitPercentage *decimal.Decimal `json:"profitPercentage"`
	FixedAmount      *decimal.Decimal `json:"fixedAmount"`
	PriceEndingDigit *int64           `json:"priceEndingDigit" binding:"omitempty,min=0"`
}

// UpdatePartnerRequest defines the fields that can be changed on a partner.
// Pointers differentiate omitted fields from zero-value fields.
type UpdatePartnerRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=255"`
	Type         *string `json:"type" binding:"omitempty,partnertype"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone *string `json:"contactPhone" binding:"omitempty,max=50"`
	Address      *string `json:"address"`
	Description  *string `json:"description"`

	Platform        *string `json:"platform" binding:"omitempty,max=100"`
	PlatformAddress *string `json:"platformAddress" binding:"omitempty,max=500"`

	CreditLimit          *decimal.Decimal `json:"creditLimit"`
	PaymentTerms         *string          `json:"paymentTerms" binding:"omitempty,max=100"`
	SettlementPeriodDays *int             `json:"settlementPeriodDays" binding:"omitempty,min=1"`

	ProfitPercentage *decimal.Decimal `json:"profitPercentage"`
	FixedAmount      *decimal.Decimal `json:"fixedAmount"`
	PriceEndingDigit *int64           `json:"priceEndingDigit" binding:"omitempty,min=0"`

	IsActive *bool `json:"isActive"`
}

// UpdateDebtRequest adjusts a partner's running debt.
type UpdateDebtRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Operation string          `json:"operation" binding:"required,oneof=add subtract set"`
	Reason    string          `json:"reason"`
}

// ListPartnersParams defines query parameters for listing partners.
type ListPartnersParams struct {
	Type       string `form:"type" binding:"omitempty,partnertype"`
	ActiveOnly bool   `form:"activeOnly,default=true"`
	Limit      int    `form:"limit,default=20"`
	Offset     int    `form:"offset,default=0"`
}

// PartnerResponse is the API representation of a partner. Debt and credit are
// also rendered as Persian digit strings for direct display in the panel.
type PartnerResponse struct {
	PartnerID    string `json:"partnerID"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Address      string `json:"address,omitempty"`
	Description  string `json:"description,omitempty"`

	Platform        string `json:"platform,omitempty"`
	PlatformAddress string `json:"platformAddress,omitempty"`

	CreditLimit          decimal.Decimal `json:"creditLimit"`
	CurrentDebt          decimal.Decimal `json:"currentDebt"`
	CurrentDebtDisplay   string          `json:"currentDebtDisplay"`
	PaymentTerms         string          `json:"paymentTerms,omitempty"`
	SettlementPeriodDays int             `json:"settlementPeriodDays"`

	ProfitPercentage decimal.Decimal `json:"profitPercentage"`
	FixedAmount      decimal.Decimal `json:"fixedAmount"`
	PriceEndingDigit int64           `json:"priceEndingDigit"`

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToPartnerResponse converts a domain.Partner to its API representation.
// debtDisplay is produced by the service so the DTO layer stays locale-free.
func ToPartnerResponse(p *domain.Partner, debtDisplay string) PartnerResponse {
	return PartnerResponse{
		PartnerID:            p.PartnerID,
		Name:                 p.Name,
		Type:                 string(p.Type),
		ContactEmail:         p.ContactEmail,
		ContactPhone:         p.ContactPhone,
		Address:              p.Address,
		Description:          p.Description,
		Platform:             p.Platform,
		PlatformAddress:      p.PlatformAddress,
		CreditLimit:          p.CreditLimit,
		CurrentDebt:          p.CurrentDebt,
		CurrentDebtDisplay:   debtDisplay,
		PaymentTerms:         p.PaymentTerms,
		SettlementPeriodDays: p.SettlementPeriodDays,
		ProfitPercentage:     p.ProfitPercentage,
		FixedAmount:          p.FixedAmount,
		PriceEndingDigit:     p.PriceEndingDigit,
		IsActive:             p.IsActive,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.LastUpdatedAt,
	}
}
