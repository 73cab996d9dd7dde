package services

// ServiceContainer holds all service facades for dependency injection.
type ServiceContainer struct {
	UserSvc        UserSvcFacade
	TokenSvc       TokenSvcFacade
	BasalamSvc     BasalamOAuthSvcFacade
	PartnerSvc     PartnerSvcFacade
	ProductSvc     ProductSvcFacade
	SKUSvc         SKUSvcFacade
	PricingSvc     PricingSvcFacade
	PricingRuleSvc PricingRuleSvcFacade
	SettlementSvc  SettlementSvcFacade
	ReportingSvc   ReportingSvcFacade
}
