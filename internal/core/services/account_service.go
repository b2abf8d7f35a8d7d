package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
	"github.com/SscSPs/corebank/internal/utils/mapping"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	cipher      cardcrypto.CardCipher
}

// NewAccountService creates the account query service.
func NewAccountService(repo portsrepo.AccountReader, cipher cardcrypto.CardCipher) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo, cipher: cipher}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccountView(ctx context.Context, accountID string) (*domain.AccountView, error) {
	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, s.lookupError(ctx, err, slog.String("card", cardcrypto.MaskTail(accountID)))
	}
	view := mapping.ToAccountView(*acc)
	return &view, nil
}

func (s *accountService) GetAccountViewByUsername(ctx context.Context, username string) (*domain.AccountView, error) {
	acc, err := s.accountRepo.FindAccountByUsername(ctx, username)
	if err != nil {
		return nil, s.lookupError(ctx, err, slog.String("username", username))
	}
	view := mapping.ToAccountView(*acc)
	return &view, nil
}

// RevealAccountID decrypts the stored ciphertext and checks it still names the account.
func (s *accountService) RevealAccountID(ctx context.Context, accountID string) (string, error) {
	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return "", s.lookupError(ctx, err, slog.String("card", cardcrypto.MaskTail(accountID)))
	}
	plain, err := s.cipher.Decrypt(acc.EncryptedAccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to decrypt stored card number", slog.String("card", cardcrypto.MaskTail(accountID)))
		return "", err
	}
	if plain != acc.AccountID {
		err := fmt.Errorf("%w: stored ciphertext does not match account", apperrors.ErrCrypto)
		s.LogError(ctx, err, "Card ciphertext integrity check failed", slog.String("card", cardcrypto.MaskTail(accountID)))
		return "", err
	}
	return plain, nil
}

func (s *accountService) lookupError(ctx context.Context, err error, attr slog.Attr) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		s.LogDebug(ctx, "Account not found", attr)
		return err
	}
	s.LogError(ctx, err, "Failed to load account", attr)
	return fmt.Errorf("failed to load account: %w", err)
}
