package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	PartnerRepo     PartnerRepositoryFacade
	ProductRepo     ProductRepositoryFacade
	SKURepo         SKURepositoryFacade
	PricingRuleRepo PricingRuleRepositoryFacade
	SettlementRepo  SettlementRepositoryFacade
	ConnectionRepo  PlatformConnectionRepositoryFacade
	ReportingRepo   ReportingRepository
}
