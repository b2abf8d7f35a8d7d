package mapping

import (
	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/SscSPs/corebank/internal/models"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
)

// ToModelLedgerRecord converts a domain LedgerRecord to a model LedgerRecord
func ToModelLedgerRecord(d domain.LedgerRecord) models.LedgerRecord {
	return models.LedgerRecord{
		LedgerID:      d.LedgerID,
		AccountID:     d.AccountID,
		Kind:          string(d.Kind),
		RequestedKind: d.RequestedKind,
		Amount:        d.Amount,
		CreatedAt:     d.Timestamp,
		Outcome:       string(d.Outcome),
		Detail:        d.Detail,
	}
}

// ToDomainLedgerRecord converts a model LedgerRecord to a domain LedgerRecord
func ToDomainLedgerRecord(m models.LedgerRecord) domain.LedgerRecord {
	return domain.LedgerRecord{
		LedgerID:      m.LedgerID,
		AccountID:     m.AccountID,
		Kind:          domain.TransactionKind(m.Kind),
		RequestedKind: m.RequestedKind,
		Amount:        m.Amount,
		Timestamp:     m.CreatedAt,
		Outcome:       domain.Outcome(m.Outcome),
		Detail:        m.Detail,
	}
}

// ToDomainLedgerRecordSlice converts a slice of model records to domain records
func ToDomainLedgerRecordSlice(ms []models.LedgerRecord) []domain.LedgerRecord {
	ds := make([]domain.LedgerRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerRecord(m)
	}
	return ds
}

// ToHistoryEntry projects a ledger record for display. The card number is masked.
func ToHistoryEntry(d domain.LedgerRecord) domain.HistoryEntry {
	return domain.HistoryEntry{
		LedgerID:        d.LedgerID,
		AccountID:       d.AccountID,
		MaskedAccountID: cardcrypto.MaskTail(d.AccountID),
		Kind:            d.Kind,
		RequestedKind:   d.RequestedKind,
		Amount:          d.Amount,
		Timestamp:       d.Timestamp,
		Outcome:         d.Outcome,
		Detail:          d.Detail,
	}
}

// ToHistoryEntries projects a slice of ledger records.
func ToHistoryEntries(ds []domain.LedgerRecord) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, len(ds))
	for i, d := range ds {
		out[i] = ToHistoryEntry(d)
	}
	return out
}
