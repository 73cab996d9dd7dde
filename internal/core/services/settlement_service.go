package services

import (
	"context"
	"fmt"

	portsrepo "github.com/bazaryar/bazaryar_backend/internal/core/ports/repositories"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
	"github.com/bazaryar/bazaryar_backend/internal/utils/pagination"
	"github.com/bazaryar/bazaryar_backend/internal/utils/persiannum"
)

const defaultSettlementPageSize = 50
const maxSettlementPageSize = 200

// settlementService implements the SettlementSvcFacade interface. Settlement
// rows are written by the partner service; this service only reads them.
type settlementService struct {
	BaseService
	settlementRepo portsrepo.SettlementReader
}

// NewSettlementService creates a new settlement service with the provided dependencies
func NewSettlementService(settlementRepo portsrepo.SettlementReader) portssvc.SettlementSvcFacade {
	return &settlementService{settlementRepo: settlementRepo}
}

var _ portssvc.SettlementSvcFacade = (*settlementService)(nil)

// GetSettlementByID retrieves a settlement record by ID.
func (s *settlementService) GetSettlementByID(ctx context.Context, settlementID string) (*dto.SettlementResponse, error) {
	settlement, err := s.settlementRepo.FindSettlementByID(ctx, settlementID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToSettlementResponse(settlement, persiannum.ToWords(settlement.Amount))
	return &resp, nil
}

// ListSettlements retrieves one page of settlements, newest first. The cursor
// is an opaque token wrapping the creation time of the last row of the
// previous page.
func (s *settlementService) ListSettlements(ctx context.Context, params dto.ListSettlementsParams) (*dto.ListSettlementsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultSettlementPageSize
	}
	if limit > maxSettlementPageSize {
		limit = maxSettlementPageSize
	}

	createdBefore, err := pagination.DecodeDateBasedToken(params.NextToken)
	if params.NextToken != "" && err != nil {
		return nil, fmt.Errorf("invalid next token: %w", err)
	}

	// Fetch one extra row to know whether another page exists.
	settlements, err := s.settlementRepo.ListSettlements(ctx, params.PartnerID, createdBefore, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list settlements")
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}

	resp := &dto.ListSettlementsResponse{
		Settlements: make([]dto.SettlementResponse, 0, len(settlements)),
	}

	hasMore := len(settlements) > limit
	if hasMore {
		settlements = settlements[:limit]
	}

	for i := range settlements {
		resp.Settlements = append(resp.Settlements,
			dto.ToSettlementResponse(&settlements[i], persiannum.ToWords(settlements[i].Amount)))
	}

	if hasMore {
		last := settlements[len(settlements)-1]
		resp.NextToken = pagination.EncodeDateBasedToken(last.CreatedAt)
	}

	return resp, nil
}
