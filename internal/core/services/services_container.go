package services

import (
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, cipher cardcrypto.CardCipher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction:  NewTransactionService(repos.TxManager),
		Account:      NewAccountService(repos.AccountRepo, cipher),
		Ledger:       NewLedgerService(repos.LedgerRepo),
		Provisioning: NewProvisioningService(repos.AccountRepo, cipher),
	}
}
