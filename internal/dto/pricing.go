package dto

import "github.com/shopspring/decimal"

// PricePreviewRequest asks what a base price would sell for under a partner's
// formula. The panel calls this while the operator types.
type PricePreviewRequest struct {
	PartnerID string          `json:"partnerID" binding:"required,uuid"`
	BasePrice decimal.Decimal `json:"basePrice" binding:"required"`
	Quantity  int             `json:"quantity" binding:"omitempty,min=1"`
	Category  string          `json:"category"`
}

// PricePreviewResponse carries the computed price plus its Persian renderings
// for the live helper text.
type PricePreviewResponse struct {
	BasePrice         decimal.Decimal `json:"basePrice"`
	FinalPrice        decimal.Decimal `json:"finalPrice"`
	FinalPriceWords   string          `json:"finalPriceWords"`
	FinalPriceDisplay string          `json:"finalPriceDisplay"`
	AppliedRuleIDs    []string        `json:"appliedRuleIDs,omitempty"`
}
