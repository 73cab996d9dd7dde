package pgsql

import (
	portsrepo "github.com/bazaryar/bazaryar_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository behind its port.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		PartnerRepo:     newPgxPartnerRepository(dbPool),
		ProductRepo:     newPgxProductRepository(dbPool),
		SKURepo:         newPgxSKURepository(dbPool),
		PricingRuleRepo: newPgxPricingRuleRepository(dbPool),
		SettlementRepo:  newPgxSettlementRepository(dbPool),
		ConnectionRepo:  newPgxPlatformConnectionRepository(dbPool),
		ReportingRepo:   newPgxReportingRepository(dbPool),
	}
}
