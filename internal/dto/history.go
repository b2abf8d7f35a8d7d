package dto

import (
	"time"

	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionHistoryResponse is one ledger entry on the wire.
type TransactionHistoryResponse struct {
	ID               int64           `json:"id"`
	MaskedCardNumber string          `json:"maskedCardNumber"`
	Type             string          `json:"type"`
	RequestedType    string          `json:"requestedType,omitempty"`
	Amount           decimal.Decimal `json:"amount" swaggertype:"number"`
	Timestamp        time.Time       `json:"timestamp"`
	Status           string          `json:"status"`
	Reason           string          `json:"reason"`
}

// ToTransactionHistoryResponses converts history entries to their wire form.
func ToTransactionHistoryResponses(entries []domain.HistoryEntry) []TransactionHistoryResponse {
	out := make([]TransactionHistoryResponse, len(entries))
	for i, e := range entries {
		out[i] = TransactionHistoryResponse{
			ID:               e.LedgerID,
			MaskedCardNumber: e.MaskedAccountID,
			Type:             string(e.Kind),
			RequestedType:    e.RequestedKind,
			Amount:           e.Amount,
			Timestamp:        e.Timestamp,
			Status:           string(e.Outcome),
			Reason:           e.Detail,
		}
	}
	return out
}
