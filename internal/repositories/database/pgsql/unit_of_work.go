package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxTransactionManager runs units of work inside a single pgx transaction.
// Row locks taken with FOR UPDATE serialise work per account until commit or rollback.
type PgxTransactionManager struct {
	BaseRepository
}

func newPgxTransactionManager(pool *pgxpool.Pool) *PgxTransactionManager {
	return &PgxTransactionManager{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

func (m *PgxTransactionManager) RunInTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepositories) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored once committed.
	defer m.Rollback(ctx, tx)

	if err := fn(ctx, &pgxTxRepositories{tx: tx}); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}

type pgxTxRepositories struct {
	tx pgx.Tx
}

func (r *pgxTxRepositories) FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	return findAccount(ctx, r.tx, "account_id = $1", accountID, true)
}

func (r *pgxTxRepositories) UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, now time.Time) error {
	return updateAccountBalance(ctx, r.tx, accountID, balance, now)
}

func (r *pgxTxRepositories) AppendLedgerRecord(ctx context.Context, record domain.LedgerRecord) (*domain.LedgerRecord, error) {
	return appendLedgerRecord(ctx, r.tx, record)
}
