package repositories

import (
	"context"

	"github.com/SscSPs/corebank/internal/core/domain"
)

// LedgerReader defines read operations on the audit ledger.
// A limit <= 0 returns every matching record. Results are newest first.
type LedgerReader interface {
	ListLedgerRecordsByAccount(ctx context.Context, accountID string, limit int) ([]domain.LedgerRecord, error)
	ListLedgerRecords(ctx context.Context, limit int) ([]domain.LedgerRecord, error)
}

// LedgerWriter appends audit records outside of a unit of work.
type LedgerWriter interface {
	AppendLedgerRecord(ctx context.Context, record domain.LedgerRecord) (*domain.LedgerRecord, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
