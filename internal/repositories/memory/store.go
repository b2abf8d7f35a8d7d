// Package memory is a process-local store with the same unit-of-work semantics as the
// Postgres repositories: per-account exclusive locks and all-or-nothing commits.
package memory

import (
	"sync"
	"time"

	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/SscSPs/corebank/internal/models"
)

// Store holds accounts and the ledger in memory. It is safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	accounts     map[string]models.Account
	usernames    map[string]string
	ledger       []models.LedgerRecord
	nextLedgerID int64
	lastStamp    time.Time
	locks        *keyedLocks
	now          func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the time source used for ledger timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty store.
func NewStore(options ...StoreOption) *Store {
	s := &Store{
		accounts:  make(map[string]models.Account),
		usernames: make(map[string]string),
		locks:     newKeyedLocks(),
		now:       time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// NewRepositoryProvider exposes a Store through the repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: &AccountRepository{store: store},
		LedgerRepo:  &LedgerRepository{store: store},
		TxManager:   &TransactionManager{store: store},
	}
}

// stampLocked assigns the next ledger id and a timestamp no earlier than the previous one.
// Caller must hold s.mu for writing.
func (s *Store) stampLocked() (int64, time.Time) {
	s.nextLedgerID++
	ts := s.now().UTC()
	if ts.Before(s.lastStamp) {
		ts = s.lastStamp
	}
	s.lastStamp = ts
	return s.nextLedgerID, ts
}
