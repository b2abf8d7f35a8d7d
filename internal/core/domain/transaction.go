package domain

import "github.com/shopspring/decimal"

// Failure and confirmation messages reported in TransactionResult.Message and the ledger detail.
const (
	MsgInvalidCard         = "Invalid card"
	MsgCardInactive        = "Card is inactive"
	MsgInvalidPIN          = "Invalid PIN"
	MsgAmountNotPositive   = "Amount must be greater than 0"
	MsgAmountPrecision     = "Amount must have at most 2 decimal places"
	MsgInsufficientBalance = "Insufficient balance"
	MsgInvalidKind         = "Invalid transaction type. Use 'withdraw' or 'topup'"
	MsgWithdrawalSuccess   = "Withdrawal successful"
	MsgTopUpSuccess        = "Top-up successful"
)

// TransactionRequest is a single card/PIN authorised balance operation.
type TransactionRequest struct {
	AccountID string
	PIN       string
	Amount    decimal.Decimal
	Kind      string
}

// TransactionResult is the structured outcome of Process. Business failures are results, not errors.
type TransactionResult struct {
	Success    bool
	Message    string
	NewBalance *decimal.Decimal
	LedgerID   *int64
}

// Failed builds a failure result.
func Failed(message string) *TransactionResult {
	return &TransactionResult{Success: false, Message: message}
}

// Succeeded builds a success result carrying the post-mutation balance and ledger id.
func Succeeded(message string, newBalance decimal.Decimal, ledgerID int64) *TransactionResult {
	return &TransactionResult{Success: true, Message: message, NewBalance: &newBalance, LedgerID: &ledgerID}
}
