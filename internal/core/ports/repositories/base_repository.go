package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TxRepositories is the set of store operations available inside a unit of work.
// Writes become visible only when the enclosing RunInTx returns nil.
type TxRepositories interface {
	// FindAccountByIDForUpdate loads an account and holds its exclusive lock until the unit of work ends.
	FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error)

	// UpdateAccountBalance stages the new balance for an account locked in this unit of work.
	UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, now time.Time) error

	// AppendLedgerRecord stages an audit record and returns it with its id and timestamp assigned.
	AppendLedgerRecord(ctx context.Context, record domain.LedgerRecord) (*domain.LedgerRecord, error)
}

// TransactionManager runs a function as one atomic unit of work.
type TransactionManager interface {
	// RunInTx commits when fn returns nil and rolls back every staged write otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx TxRepositories) error) error
}
