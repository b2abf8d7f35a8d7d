package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corebank/internal/core/ports/services"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
	"github.com/SscSPs/corebank/internal/utils/mapping"
)

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
}

// NewLedgerService creates the history query service.
func NewLedgerService(repo portsrepo.LedgerReader) portssvc.LedgerSvc {
	return &ledgerService{ledgerRepo: repo}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) GetHistory(ctx context.Context, accountID string, limit int) ([]domain.HistoryEntry, error) {
	records, err := s.ledgerRepo.ListLedgerRecordsByAccount(ctx, accountID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger records", slog.String("card", cardcrypto.MaskTail(accountID)))
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return mapping.ToHistoryEntries(records), nil
}

func (s *ledgerService) GetAllHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	records, err := s.ledgerRepo.ListLedgerRecords(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger records")
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return mapping.ToHistoryEntries(records), nil
}
