package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/SscSPs/corebank/internal/models"
	"github.com/SscSPs/corebank/internal/utils/mapping"
)

// LedgerRepository implements the ledger ports over a Store.
type LedgerRepository struct {
	store *Store
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func (r *LedgerRepository) AppendLedgerRecord(ctx context.Context, record domain.LedgerRecord) (*domain.LedgerRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	record.LedgerID, record.Timestamp = r.store.stampLocked()
	r.store.insertLedgerLocked(mapping.ToModelLedgerRecord(record))
	return &record, nil
}

func (r *LedgerRepository) ListLedgerRecordsByAccount(ctx context.Context, accountID string, limit int) ([]domain.LedgerRecord, error) {
	return r.list(limit, func(m models.LedgerRecord) bool { return m.AccountID == accountID }), nil
}

func (r *LedgerRepository) ListLedgerRecords(ctx context.Context, limit int) ([]domain.LedgerRecord, error) {
	return r.list(limit, func(models.LedgerRecord) bool { return true }), nil
}

// list walks the ledger newest first.
func (r *LedgerRepository) list(limit int, match func(models.LedgerRecord) bool) []domain.LedgerRecord {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]models.LedgerRecord, 0)
	for i := len(r.store.ledger) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		if m := r.store.ledger[i]; match(m) {
			out = append(out, m)
		}
	}
	return mapping.ToDomainLedgerRecordSlice(out)
}

// insertLedgerLocked keeps s.ledger sorted by id. Units of work may commit out of id order.
// Caller must hold s.mu for writing.
func (s *Store) insertLedgerLocked(m models.LedgerRecord) {
	i := sort.Search(len(s.ledger), func(i int) bool { return s.ledger[i].LedgerID > m.LedgerID })
	s.ledger = append(s.ledger, models.LedgerRecord{})
	copy(s.ledger[i+1:], s.ledger[i:])
	s.ledger[i] = m
}
