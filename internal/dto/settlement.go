package dto

import (
	"time"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListSettlementsParams defines query parameters for listing settlements.
// NextToken is an opaque cursor from a previous page.
type ListSettlementsParams struct {
	PartnerID string `form:"partnerID" binding:"omitempty,uuid"`
	Limit     int    `form:"limit,default=50"`
	NextToken string `form:"nextToken"`
}

// SettlementResponse is the API representation of a settlement record.
type SettlementResponse struct {
	SettlementID  string          `json:"settlementID"`
	PartnerID     string          `json:"partnerID"`
	PartnerName   string          `json:"partnerName,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	AmountWords   string          `json:"amountWords"`
	PreviousDebt  decimal.Decimal `json:"previousDebt"`
	RemainingDebt decimal.Decimal `json:"remainingDebt"`
	Reason        string          `json:"reason,omitempty"`
	SettledBy     string          `json:"settledBy"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToSettlementResponse converts a domain.Settlement to its API representation.
// amountWords is produced by the service.
func ToSettlementResponse(s *domain.Settlement, amountWords string) SettlementResponse {
	return SettlementResponse{
		SettlementID:  s.SettlementID,
		PartnerID:     s.PartnerID,
		PartnerName:   s.PartnerName,
		Amount:        s.Amount,
		AmountWords:   amountWords,
		PreviousDebt:  s.PreviousDebt,
		RemainingDebt: s.RemainingDebt,
		Reason:        s.Reason,
		SettledBy:     s.SettledBy,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
}

// ListSettlementsResponse wraps one page of settlements. NextToken is empty
// on the last page.
type ListSettlementsResponse struct {
	Settlements []SettlementResponse `json:"settlements"`
	NextToken   string               `json:"nextToken,omitempty"`
}
