package services

import (
	"context"

	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/SscSPs/corebank/internal/dto"
)

// AccountReaderSvc defines read operations for account views
type AccountReaderSvc interface {
	GetAccountView(ctx context.Context, accountID string) (*domain.AccountView, error)
	GetAccountViewByUsername(ctx context.Context, username string) (*domain.AccountView, error)
	// RevealAccountID decrypts the stored card ciphertext and checks it against the key.
	RevealAccountID(ctx context.Context, accountID string) (string, error)
}

// ProvisioningSvc creates accounts with a hashed PIN and encrypted card number.
type ProvisioningSvc interface {
	ProvisionAccount(ctx context.Context, req dto.ProvisionAccountRequest) (*domain.AccountView, error)
	SeedDemoData(ctx context.Context) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
}
