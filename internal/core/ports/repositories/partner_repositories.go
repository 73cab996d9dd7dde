package repositories

import (
	"context"

	"github.com/bazaryar/bazaryar_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PartnerReader defines read operations for partner data
type PartnerReader interface {
	// FindPartnerByID retrieves a partner by its ID.
	FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)

	// ListPartners retrieves partners with limit/offset pagination, optionally
	// filtered by type. activeOnly excludes deactivated partners.
	ListPartners(ctx context.Context, partnerType *domain.PartnerType, activeOnly bool, limit int, offset int) ([]domain.Partner, error)
}

// PartnerWriter defines write operations for partner data
type PartnerWriter interface {
	// SavePartner persists a new partner.
	SavePartner(ctx context.Context, partner domain.Partner) error

	// UpdatePartner persists changes to an existing partner.
	UpdatePartner(ctx context.Context, partner domain.Partner) error

	// UpdatePartnerDebt sets the partner's current debt and, when settlement is
	// non-nil, records the settlement row in the same transaction.
	UpdatePartnerDebt(ctx context.Context, partnerID string, newDebt decimal.Decimal, updatedBy string, settlement *domain.Settlement) error

	// MarkPartnerInactive deactivates a partner.
	MarkPartnerInactive(ctx context.Context, partnerID string, updatedBy string) error
}

// PartnerRepositoryFacade combines all partner-related repository interfaces
type PartnerRepositoryFacade interface {
	PartnerReader
	PartnerWriter
}
