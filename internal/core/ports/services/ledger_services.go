package services

import (
	"context"

	"github.com/SscSPs/corebank/internal/core/domain"
)

// LedgerSvc exposes the audit history. A limit <= 0 returns everything.
type LedgerSvc interface {
	GetHistory(ctx context.Context, accountID string, limit int) ([]domain.HistoryEntry, error)
	GetAllHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
}
