package dto

import "github.com/shopspring/decimal"

// InventorySummaryResponse aggregates catalog-wide stock figures.
type InventorySummaryResponse struct {
	TotalProducts  int `json:"totalProducts"`
	TotalSKUs      int `json:"totalSKUs"`
	TotalInventory int `json:"totalInventory"`
	OutOfStockSKUs int `json:"outOfStockSKUs"`
	UnpricedSKUs   int `json:"unpricedSKUs"`
}

// PartnerDebtRow is one partner's line in the dashboard debt report.
type PartnerDebtRow struct {
	PartnerID          string          `json:"partnerID"`
	PartnerName        string          `json:"partnerName"`
	CurrentDebt        decimal.Decimal `json:"currentDebt"`
	CurrentDebtDisplay string          `json:"currentDebtDisplay"`
	CreditLimit        decimal.Decimal `json:"creditLimit"`
	ProductsCount      int             `json:"productsCount"`
}

// DashboardResponse is the payload behind the panel's landing page.
type DashboardResponse struct {
	Inventory        InventorySummaryResponse `json:"inventory"`
	TotalDebt        decimal.Decimal          `json:"totalDebt"`
	TotalDebtDisplay string                   `json:"totalDebtDisplay"`
	TotalDebtWords   string                   `json:"totalDebtWords"`
	PartnerDebts     []PartnerDebtRow         `json:"partnerDebts"`
}
