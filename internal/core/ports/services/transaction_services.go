package services

import (
	"context"

	"github.com/SscSPs/corebank/internal/core/domain"
)

// TransactionSvc authenticates a card/PIN pair and applies a debit or credit.
type TransactionSvc interface {
	// Process runs one attempt to completion. Business failures come back as a result with
	// Success=false; the returned error is reserved for storage and crypto faults.
	Process(ctx context.Context, req domain.TransactionRequest) (*domain.TransactionResult, error)
}
