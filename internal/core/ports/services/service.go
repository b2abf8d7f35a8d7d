package services

// ServiceContainer holds all service interfaces
type ServiceContainer struct {
	Transaction  TransactionSvc
	Account      AccountSvcFacade
	Ledger       LedgerSvc
	Provisioning ProvisioningSvc
}
