package services

import (
	"context"

	"github.com/bazaryar/bazaryar_backend/internal/dto"
)

// PricingSvcFacade computes partner selling prices on demand.
type PricingSvcFacade interface {
	// PreviewPrice runs a base price through the partner's formula and any
	// applicable pricing rules without persisting anything.
	PreviewPrice(ctx context.Context, req dto.PricePreviewRequest) (*dto.PricePreviewResponse, error)
}
