package domain

import "github.com/shopspring/decimal"

// Account is a card-backed balance. AccountID is the card number.
type Account struct {
	AccountID          string
	EncryptedAccountID string
	PINHash            string
	Balance            decimal.Decimal
	OwnerName          string
	Username           string
	IsActive           bool
	AuditFields
}

// CanDebit reports whether the balance covers amount. Comparison is exact.
func (a *Account) CanDebit(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// AccountView is the read projection of an Account. It never carries the PIN digest or ciphertext.
type AccountView struct {
	AccountID       string
	MaskedAccountID string
	Balance         decimal.Decimal
	OwnerName       string
	Username        string
	IsActive        bool
}
