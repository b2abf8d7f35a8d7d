package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRecord is the row shape of the ledger_records table.
type LedgerRecord struct {
	LedgerID      int64           `db:"ledger_id"`
	AccountID     string          `db:"account_id"`
	Kind          string          `db:"kind"`
	RequestedKind string          `db:"requested_kind"`
	Amount        decimal.Decimal `db:"amount"`
	CreatedAt     time.Time       `db:"created_at"`
	Outcome       string          `db:"outcome"`
	Detail        string          `db:"detail"`
}
