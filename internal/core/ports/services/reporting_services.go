package services

import (
	"context"

	"github.com/bazaryar/bazaryar_backend/internal/dto"
)

// ReportingSvcFacade aggregates figures for the panel dashboard.
type ReportingSvcFacade interface {
	// GetDashboard builds the inventory and debt summary for the landing page.
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}
