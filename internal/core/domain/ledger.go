package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the closed set of balance operations.
type TransactionKind string

const (
	KindDebit   TransactionKind = "DEBIT"
	KindCredit  TransactionKind = "CREDIT"
	KindUnknown TransactionKind = "UNKNOWN"
)

// maxRequestedKindLen bounds the raw kind stored alongside a ledger record.
const maxRequestedKindLen = 32

// ParseTransactionKind maps a caller-supplied kind to the closed variant.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseTransactionKind(raw string) TransactionKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "withdraw", "debit":
		return KindDebit
	case "topup", "credit":
		return KindCredit
	default:
		return KindUnknown
	}
}

// TruncateRequestedKind trims the raw kind to a size safe to persist.
func TruncateRequestedKind(raw string) string {
	r := []rune(raw)
	if len(r) > maxRequestedKindLen {
		return string(r[:maxRequestedKindLen])
	}
	return raw
}

// Outcome is the result of a processed attempt.
type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailed  Outcome = "FAILED"
)

// LedgerRecord is an immutable audit entry. LedgerID and Timestamp are assigned by the store.
type LedgerRecord struct {
	LedgerID      int64
	AccountID     string
	Kind          TransactionKind
	RequestedKind string
	Amount        decimal.Decimal
	Timestamp     time.Time
	Outcome       Outcome
	Detail        string
}

// HistoryEntry is the read projection of a LedgerRecord with the card number masked.
type HistoryEntry struct {
	LedgerID        int64
	AccountID       string
	MaskedAccountID string
	Kind            TransactionKind
	RequestedKind   string
	Amount          decimal.Decimal
	Timestamp       time.Time
	Outcome         Outcome
	Detail          string
}
