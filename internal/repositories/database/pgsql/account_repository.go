package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/SscSPs/corebank/internal/models"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
	"github.com/SscSPs/corebank/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, encrypted_account_id, pin_hash, balance, owner_name, username, is_active, created_at, last_updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.EncryptedAccountID,
		&m.PINHash,
		&m.Balance,
		&m.OwnerName,
		&m.Username,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

func findAccount(ctx context.Context, q querier, where string, arg string, forUpdate bool) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where
	if forUpdate {
		query += ` FOR UPDATE`
	}
	acc, err := scanAccount(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find account: %v", apperrors.ErrStorage, err)
	}
	return acc, nil
}

// FindAccountByID retrieves an account by its card number.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return findAccount(ctx, r.Pool, "account_id = $1", accountID, false)
}

// FindAccountByUsername retrieves an account by its unique username.
func (r *PgxAccountRepository) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return findAccount(ctx, r.Pool, "username = $1", username, false)
}

// SaveAccount upserts by account_id. A username taken by another account maps to ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (account_id) DO UPDATE SET
			encrypted_account_id = EXCLUDED.encrypted_account_id,
			pin_hash = EXCLUDED.pin_hash,
			balance = EXCLUDED.balance,
			owner_name = EXCLUDED.owner_name,
			username = EXCLUDED.username,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.EncryptedAccountID,
		m.PINHash,
		m.Balance,
		m.OwnerName,
		m.Username,
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username %s already in use", apperrors.ErrDuplicate, m.Username)
		}
		return fmt.Errorf("%w: failed to save account %s: %v", apperrors.ErrStorage, cardcrypto.MaskTail(m.AccountID), err)
	}
	return nil
}

func updateAccountBalance(ctx context.Context, q querier, accountID string, balance decimal.Decimal, now time.Time) error {
	tag, err := q.Exec(ctx,
		`UPDATE accounts SET balance = $2, last_updated_at = $3 WHERE account_id = $1;`,
		accountID, balance, now)
	if err != nil {
		return fmt.Errorf("%w: failed to update balance: %v", apperrors.ErrStorage, err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("%w: balance update matched %d rows", apperrors.ErrStorage, tag.RowsAffected())
	}
	return nil
}
