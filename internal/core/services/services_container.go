package services

import (
	portsrepo "github.com/bazaryar/bazaryar_backend/internal/core/ports/repositories"
	portssvc "github.com/bazaryar/bazaryar_backend/internal/core/ports/services"
	"github.com/bazaryar/bazaryar_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.UserSvc = NewUserService(repos.UserRepo)
	container.TokenSvc = NewTokenService(cfg, container.UserSvc)
	container.BasalamSvc = NewBasalamOAuthService(cfg, repos.ConnectionRepo)

	container.PartnerSvc = NewPartnerService(repos.PartnerRepo)
	container.ProductSvc = NewProductService(repos.ProductRepo, repos.PartnerRepo)
	container.SKUSvc = NewSKUService(repos.SKURepo, repos.ProductRepo, repos.PartnerRepo)

	container.PricingSvc = NewPricingService(repos.PartnerRepo, repos.PricingRuleRepo)
	container.PricingRuleSvc = NewPricingRuleService(repos.PricingRuleRepo, repos.PartnerRepo)
	container.SettlementSvc = NewSettlementService(repos.SettlementRepo)
	container.ReportingSvc = NewReportingService(repos.ReportingRepo)

	return container
}
