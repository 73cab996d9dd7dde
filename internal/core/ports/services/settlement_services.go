package services

import (
	"context"

	"github.com/bazaryar/bazaryar_backend/internal/dto"
)

// SettlementSvcFacade exposes the settlement history. Settlements are created
// by the partner service when debt is reduced, never directly.
type SettlementSvcFacade interface {
	// GetSettlementByID retrieves a settlement record by ID.
	GetSettlementByID(ctx context.Context, settlementID string) (*dto.SettlementResponse, error)

	// ListSettlements retrieves one page of settlements, newest first.
	ListSettlements(ctx context.Context, params dto.ListSettlementsParams) (*dto.ListSettlementsResponse, error)
}
