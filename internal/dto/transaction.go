package dto

import (
	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProcessTransactionRequest is the body of POST /process.
type ProcessTransactionRequest struct {
	CardNumber string          `json:"cardNumber" binding:"required" example:"4123456789012345"`
	PIN        string          `json:"pin" binding:"required" example:"1234"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"number" example:"100.00"`
	Type       string          `json:"type" binding:"required" example:"withdraw"`
}

// GatewayTransactionRequest is the body of POST /transaction. The card range and kind are
// checked before the request reaches the engine.
type GatewayTransactionRequest struct {
	CardNumber string          `json:"cardNumber" binding:"required,cardnumber" example:"4123456789012345"`
	PIN        string          `json:"pin" binding:"required" example:"1234"`
	Amount     decimal.Decimal `json:"amount" binding:"required,gt=0" swaggertype:"number" example:"100.00"`
	Type       string          `json:"type" binding:"required,txkind" example:"withdraw"`
}

// ToDomain converts the wire request to the engine request.
func (r ProcessTransactionRequest) ToDomain() domain.TransactionRequest {
	return domain.TransactionRequest{AccountID: r.CardNumber, PIN: r.PIN, Amount: r.Amount, Kind: r.Type}
}

// ToDomain converts the wire request to the engine request.
func (r GatewayTransactionRequest) ToDomain() domain.TransactionRequest {
	return domain.TransactionRequest{AccountID: r.CardNumber, PIN: r.PIN, Amount: r.Amount, Kind: r.Type}
}

// TransactionResponse mirrors domain.TransactionResult on the wire.
type TransactionResponse struct {
	Success       bool             `json:"success"`
	Message       string           `json:"message"`
	NewBalance    *decimal.Decimal `json:"newBalance" swaggertype:"number"`
	TransactionID *int64           `json:"transactionId"`
}

// ToTransactionResponse converts an engine result to its wire form.
func ToTransactionResponse(r *domain.TransactionResult) TransactionResponse {
	resp := TransactionResponse{
		Success:       r.Success,
		Message:       r.Message,
		TransactionID: r.LedgerID,
	}
	if r.NewBalance != nil {
		b := r.NewBalance.Round(2)
		resp.NewBalance = &b
	}
	return resp
}
