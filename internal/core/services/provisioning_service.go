package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/dto"
	"github.com/SscSPs/corebank/internal/utils"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
	"github.com/SscSPs/corebank/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// DemoAccounts are the cards created by SeedDemoData.
var DemoAccounts = []dto.ProvisionAccountRequest{
	{CardNumber: "4123456789012345", PIN: "1234", InitialBalance: decimal.RequireFromString("1000.00"), CustomerName: "John Doe", Username: "cust1"},
	{CardNumber: "4987654321098765", PIN: "5678", InitialBalance: decimal.RequireFromString("2500.00"), CustomerName: "Jane Smith", Username: "cust2"},
}

type provisioningService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	cipher      cardcrypto.CardCipher
	now         func() time.Time
}

// NewProvisioningService creates the service that seeds and imports accounts.
func NewProvisioningService(repo portsrepo.AccountRepositoryFacade, cipher cardcrypto.CardCipher) portssvc.ProvisioningSvc {
	return &provisioningService{accountRepo: repo, cipher: cipher, now: time.Now}
}

var _ portssvc.ProvisioningSvc = (*provisioningService)(nil)

// ProvisionAccount stores an account with a hashed PIN and encrypted card number.
// An existing account with the same card number is replaced.
func (s *provisioningService) ProvisionAccount(ctx context.Context, req dto.ProvisionAccountRequest) (*domain.AccountView, error) {
	if req.CardNumber == "" || req.PIN == "" || req.Username == "" {
		return nil, fmt.Errorf("%w: card number, PIN and username are required", apperrors.ErrValidation)
	}
	if req.InitialBalance.IsNegative() || !utils.HasValidPrecision(req.InitialBalance) {
		return nil, fmt.Errorf("%w: initial balance must be non-negative with at most 2 decimal places", apperrors.ErrValidation)
	}

	encrypted, err := s.cipher.Encrypt(req.CardNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to encrypt card number", slog.String("card", cardcrypto.MaskTail(req.CardNumber)))
		return nil, err
	}

	now := s.now()
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	acc := domain.Account{
		AccountID:          req.CardNumber,
		EncryptedAccountID: encrypted,
		PINHash:            cardcrypto.HashPIN(req.PIN),
		Balance:            req.InitialBalance,
		OwnerName:          req.CustomerName,
		Username:           req.Username,
		IsActive:           active,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if existing, err := s.accountRepo.FindAccountByID(ctx, req.CardNumber); err == nil {
		acc.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	if err := s.accountRepo.SaveAccount(ctx, acc); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("card", cardcrypto.MaskTail(req.CardNumber)))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account provisioned", slog.String("card", cardcrypto.MaskTail(req.CardNumber)), slog.String("username", req.Username))
	view := mapping.ToAccountView(acc)
	return &view, nil
}

// SeedDemoData creates the demo cards that do not exist yet. Existing cards are left untouched.
func (s *provisioningService) SeedDemoData(ctx context.Context) error {
	for _, demo := range DemoAccounts {
		_, err := s.accountRepo.FindAccountByID(ctx, demo.CardNumber)
		if err == nil {
			s.LogDebug(ctx, "Demo account already present", slog.String("card", cardcrypto.MaskTail(demo.CardNumber)))
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check demo account: %w", err)
		}
		if _, err := s.ProvisionAccount(ctx, demo); err != nil {
			return fmt.Errorf("failed to seed demo account: %w", err)
		}
	}
	return nil
}
