package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/corebank/internal/apperrors"
	"github.com/SscSPs/corebank/internal/core/domain"
	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/SscSPs/corebank/internal/models"
	"github.com/SscSPs/corebank/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const ledgerColumns = `ledger_id, account_id, kind, requested_kind, amount, created_at, outcome, detail`

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// AppendLedgerRecord inserts a record outside of any unit of work.
func (r *PgxLedgerRepository) AppendLedgerRecord(ctx context.Context, record domain.LedgerRecord) (*domain.LedgerRecord, error) {
	return appendLedgerRecord(ctx, r.Pool, record)
}

// appendLedgerRecord lets the database assign ledger_id (BIGSERIAL) and created_at (clock_timestamp()).
func appendLedgerRecord(ctx context.Context, q querier, record domain.LedgerRecord) (*domain.LedgerRecord, error) {
	m := mapping.ToModelLedgerRecord(record)
	query := `
		INSERT INTO ledger_records (account_id, kind, requested_kind, amount, outcome, detail)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + ledgerColumns + `;
	`
	var out models.LedgerRecord
	err := q.QueryRow(ctx, query,
		m.AccountID,
		m.Kind,
		m.RequestedKind,
		m.Amount,
		m.Outcome,
		m.Detail,
	).Scan(
		&out.LedgerID,
		&out.AccountID,
		&out.Kind,
		&out.RequestedKind,
		&out.Amount,
		&out.CreatedAt,
		&out.Outcome,
		&out.Detail,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to append ledger record: %v", apperrors.ErrStorage, err)
	}
	stored := mapping.ToDomainLedgerRecord(out)
	return &stored, nil
}

// ListLedgerRecordsByAccount returns an account's records newest first.
func (r *PgxLedgerRepository) ListLedgerRecordsByAccount(ctx context.Context, accountID string, limit int) ([]domain.LedgerRecord, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_records WHERE account_id = $1 ORDER BY ledger_id DESC`
	args := []any{accountID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	return r.list(ctx, query, args...)
}

// ListLedgerRecords returns every record newest first.
func (r *PgxLedgerRepository) ListLedgerRecords(ctx context.Context, limit int) ([]domain.LedgerRecord, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_records ORDER BY ledger_id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	return r.list(ctx, query, args...)
}

func (r *PgxLedgerRepository) list(ctx context.Context, query string, args ...any) ([]domain.LedgerRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query ledger records: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	records := make([]models.LedgerRecord, 0)
	for rows.Next() {
		var m models.LedgerRecord
		if err := rows.Scan(
			&m.LedgerID,
			&m.AccountID,
			&m.Kind,
			&m.RequestedKind,
			&m.Amount,
			&m.CreatedAt,
			&m.Outcome,
			&m.Detail,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan ledger record: %v", apperrors.ErrStorage, err)
		}
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating ledger records: %v", apperrors.ErrStorage, err)
	}
	return mapping.ToDomainLedgerRecordSlice(records), nil
}
