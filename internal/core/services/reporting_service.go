package services

import (
	"context"
	"fmt"

	portsrepo "github.com/bazaryar/bazaryar_backend/internal/core/ports/repositories"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
	"github.com/bazaryar/bazaryar_backend/internal/utils/persiannum"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service with the provided dependencies
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDashboard builds the inventory and debt summary for the panel's landing
// page. Debt figures carry Persian renderings for direct display.
func (s *reportingService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	inventory, err := s.reportingRepo.GetInventorySummary(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate inventory summary")
		return nil, fmt.Errorf("failed to aggregate inventory summary: %w", err)
	}

	totalDebt, err := s.reportingRepo.GetTotalDebt(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum partner debt")
		return nil, fmt.Errorf("failed to sum partner debt: %w", err)
	}

	partnerDebts, err := s.reportingRepo.ListPartnerDebts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list partner debts")
		return nil, fmt.Errorf("failed to list partner debts: %w", err)
	}

	resp := &dto.DashboardResponse{
		Inventory: dto.InventorySummaryResponse{
			TotalProducts:  inventory.TotalProducts,
			TotalSKUs:      inventory.TotalSKUs,
			TotalInventory: inventory.TotalInventory,
			OutOfStockSKUs: inventory.OutOfStockSKUs,
			UnpricedSKUs:   inventory.UnpricedSKUs,
		},
		TotalDebt:        totalDebt,
		TotalDebtDisplay: persiannum.FormatToman(totalDebt),
		TotalDebtWords:   persiannum.ToWords(totalDebt),
		PartnerDebts:     make([]dto.PartnerDebtRow, 0, len(partnerDebts)),
	}

	for _, row := range partnerDebts {
		resp.PartnerDebts = append(resp.PartnerDebts, dto.PartnerDebtRow{
			PartnerID:          row.PartnerID,
			PartnerName:        row.PartnerName,
			CurrentDebt:        row.CurrentDebt,
			CurrentDebtDisplay: persiannum.FormatToman(row.CurrentDebt),
			CreditLimit:        row.CreditLimit,
			ProductsCount:      row.ProductsCount,
		})
	}

	return resp, nil
}
