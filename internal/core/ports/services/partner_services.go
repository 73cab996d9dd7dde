package services

import (
	"context"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	"github.com/bazaryar/bazaryar_backend/internal/dto"
)

// PartnerReaderSvc defines read operations for partners
type PartnerReaderSvc interface {
	// GetPartnerByID retrieves a partner by ID.
	GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)

	// ListPartners retrieves partners matching the params.
	ListPartners(ctx context.Context, params dto.ListPartnersParams) ([]domain.Partner, error)
}

// PartnerWriterSvc defines write operations for partners
type PartnerWriterSvc interface {
	// CreatePartner registers a new partner.
	CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, creatorUserID string) (*domain.Partner, error)

	// UpdatePartner applies the allowed updates to a partner.
	UpdatePartner(ctx context.Context, partnerID string, req dto.UpdatePartnerRequest, updaterUserID string) (*domain.Partner, error)

	// UpdateDebt adds to, subtracts from, or sets a partner's current debt.
	// Reductions are recorded as settlements; increases are checked against the
	// credit limit.
	UpdateDebt(ctx context.Context, partnerID string, req dto.UpdateDebtRequest, updaterUserID string) (*domain.Partner, error)

	// DeactivatePartner marks a partner inactive.
	DeactivatePartner(ctx context.Context, partnerID string, updaterUserID string) error
}

// PartnerSvcFacade combines all partner-related service interfaces
type PartnerSvcFacade interface {
	PartnerReaderSvc
	PartnerWriterSvc
}
