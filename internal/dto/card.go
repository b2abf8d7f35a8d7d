package dto

import (
	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CardInfoResponse is the account projection returned by the card lookups.
type CardInfoResponse struct {
	CardNumber       string          `json:"cardNumber"`
	MaskedCardNumber string          `json:"maskedCardNumber"`
	Balance          decimal.Decimal `json:"balance" swaggertype:"number"`
	CustomerName     string          `json:"customerName"`
	Username         string          `json:"username"`
	Active           bool            `json:"active"`
}

// ToCardInfoResponse converts an account view to its wire form.
func ToCardInfoResponse(v domain.AccountView) CardInfoResponse {
	return CardInfoResponse{
		CardNumber:       v.AccountID,
		MaskedCardNumber: v.MaskedAccountID,
		Balance:          v.Balance.Round(2),
		CustomerName:     v.OwnerName,
		Username:         v.Username,
		Active:           v.IsActive,
	}
}

// ProvisionAccountRequest creates or replaces an account.
type ProvisionAccountRequest struct {
	CardNumber     string          `json:"cardNumber" binding:"required,cardnumber"`
	PIN            string          `json:"pin" binding:"required,numeric,min=4,max=12"`
	InitialBalance decimal.Decimal `json:"initialBalance" binding:"gte=0" swaggertype:"number"`
	CustomerName   string          `json:"customerName" binding:"required"`
	Username       string          `json:"username" binding:"required"`
	Active         *bool           `json:"active"`
}

// CardIntegrityResponse reports whether the stored card ciphertext decrypts back to the card number.
type CardIntegrityResponse struct {
	MaskedCardNumber string `json:"maskedCardNumber"`
	Verified         bool   `json:"verified"`
	Reason           string `json:"reason,omitempty"`
}
