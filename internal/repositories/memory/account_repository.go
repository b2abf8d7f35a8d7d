package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/SscSPs/corebank/internal/utils/mapping"
)

// AccountRepository implements the account ports over a Store.
type AccountRepository struct {
	store *Store
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	m, ok := r.store.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func (r *AccountRepository) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	id, ok := r.store.usernames[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	acc := mapping.ToDomainAccount(r.store.accounts[id])
	return &acc, nil
}

// SaveAccount upserts by id and keeps the username index unique. It waits for any unit of
// work holding the account, like the row lock taken by the Postgres upsert.
func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	r.store.locks.Lock(account.AccountID)
	defer r.store.locks.Unlock(account.AccountID)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if owner, ok := r.store.usernames[account.Username]; ok && owner != account.AccountID {
		return fmt.Errorf("%w: username %s already in use", apperrors.ErrDuplicate, account.Username)
	}
	if prev, ok := r.store.accounts[account.AccountID]; ok && prev.Username != account.Username {
		delete(r.store.usernames, prev.Username)
	}
	r.store.accounts[account.AccountID] = mapping.ToModelAccount(account)
	r.store.usernames[account.Username] = account.AccountID
	return nil
}
