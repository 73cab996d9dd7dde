package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement records a single debt payment to a partner: how much was paid,
// what the debt was before and what remains after. Rows are append-only.
type Settlement struct {
	SettlementID  string          `json:"settlementID"` // Primary Key (UUID)
	PartnerID     string          `json:"partnerID"`    // FK -> partners
	Amount        decimal.Decimal `json:"amount"`       // Toman paid
	PreviousDebt  decimal.Decimal `json:"previousDebt"`
	RemainingDebt decimal.Decimal `json:"remainingDebt"`
	Reason        string          `json:"reason,omitempty"`
	SettledBy     string          `json:"settledBy"` // UserID or "system"
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`

	// PartnerName is populated on reads that join the partner row.
	PartnerName string `json:"partnerName,omitempty"`
}
