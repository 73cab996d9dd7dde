package repositories

import (
	"context"

	"github.com/shopspring/decimal"
)

// PartnerDebtSummary is one row of the dashboard debt report.
type PartnerDebtSummary struct {
	PartnerID     string
	PartnerName   string
	CurrentDebt   decimal.Decimal
	CreditLimit   decimal.Decimal
	ProductsCount int
}

// InventorySummary aggregates catalog-wide stock figures.
type InventorySummary struct {
	TotalProducts  int
	TotalSKUs      int
	TotalInventory int
	OutOfStockSKUs int
	UnpricedSKUs   int // SKUs with a base price but no final price yet
}

// ReportingRepository runs the aggregate queries behind the dashboard.
type ReportingRepository interface {
	// GetInventorySummary aggregates product/SKU/stock counts.
	GetInventorySummary(ctx context.Context) (*InventorySummary, error)

	// ListPartnerDebts aggregates per-partner debt and catalog counts for
	// active partners, ordered by debt descending.
	ListPartnerDebts(ctx context.Context) ([]PartnerDebtSummary, error)

	// GetTotalDebt sums current debt across active partners.
	GetTotalDebt(ctx context.Context) (decimal.Decimal, error)
}
