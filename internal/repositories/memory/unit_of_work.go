package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/SscSPs/corebank/internal/models"
	"github.com/SscSPs/corebank/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// TransactionManager runs units of work against a Store. Writes are staged and applied
// together under the store mutex only when the work function succeeds.
type TransactionManager struct {
	store *Store
}

var _ portsrepo.TransactionManager = (*TransactionManager)(nil)

func (m *TransactionManager) RunInTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxRepositories) error) error {
	tx := &memTx{
		store:    m.store,
		held:     make(map[string]struct{}),
		balances: make(map[string]balanceWrite),
	}
	defer tx.release()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

type balanceWrite struct {
	balance decimal.Decimal
	at      time.Time
}

type memTx struct {
	store    *Store
	held     map[string]struct{}
	balances map[string]balanceWrite
	records  []models.LedgerRecord
}

func (t *memTx) FindAccountByIDForUpdate(ctx context.Context, accountID string) (*domain.Account, error) {
	if _, ok := t.held[accountID]; !ok {
		t.store.locks.Lock(accountID)
		t.held[accountID] = struct{}{}
	}

	t.store.mu.RLock()
	m, ok := t.store.accounts[accountID]
	t.store.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if w, staged := t.balances[accountID]; staged {
		m.Balance = w.balance
		m.LastUpdatedAt = w.at
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (t *memTx) UpdateAccountBalance(ctx context.Context, accountID string, balance decimal.Decimal, now time.Time) error {
	if _, ok := t.held[accountID]; !ok {
		return fmt.Errorf("%w: balance update on account not locked in this unit of work", apperrors.ErrStorage)
	}
	if balance.IsNegative() {
		return fmt.Errorf("%w: balance would become negative", apperrors.ErrStorage)
	}
	t.balances[accountID] = balanceWrite{balance: balance, at: now}
	return nil
}

func (t *memTx) AppendLedgerRecord(ctx context.Context, record domain.LedgerRecord) (*domain.LedgerRecord, error) {
	t.store.mu.Lock()
	record.LedgerID, record.Timestamp = t.store.stampLocked()
	t.store.mu.Unlock()

	t.records = append(t.records, mapping.ToModelLedgerRecord(record))
	return &record, nil
}

func (t *memTx) commit() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	for id := range t.balances {
		if _, ok := t.store.accounts[id]; !ok {
			return fmt.Errorf("%w: account vanished before commit", apperrors.ErrStorage)
		}
	}
	for id, w := range t.balances {
		m := t.store.accounts[id]
		m.Balance = w.balance
		m.LastUpdatedAt = w.at
		t.store.accounts[id] = m
	}
	for _, r := range t.records {
		t.store.insertLedgerLocked(r)
	}
	return nil
}

func (t *memTx) release() {
	for id := range t.held {
		t.store.locks.Unlock(id)
	}
	t.held = nil
}
