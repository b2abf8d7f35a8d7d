package models

import (
	"github.com/shopspring/decimal"
)

// Account is the row shape of the accounts table.
type Account struct {
	AccountID          string          `db:"account_id"`
	EncryptedAccountID string          `db:"encrypted_account_id"`
	PINHash            string          `db:"pin_hash"`
	Balance            decimal.Decimal `db:"balance"`
	OwnerName          string          `db:"owner_name"`
	Username           string          `db:"username"`
	IsActive           bool            `db:"is_active"`
	AuditFields
}
