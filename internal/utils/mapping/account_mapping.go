package mapping

import (
	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/SscSPs/corebank/internal/models"
	"github.com/SscSPs/corebank/internal/utils/cardcrypto"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:          d.AccountID,
		EncryptedAccountID: d.EncryptedAccountID,
		PINHash:            d.PINHash,
		Balance:            d.Balance,
		OwnerName:          d.OwnerName,
		Username:           d.Username,
		IsActive:           d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:          m.AccountID,
		EncryptedAccountID: m.EncryptedAccountID,
		PINHash:            m.PINHash,
		Balance:            m.Balance,
		OwnerName:          m.OwnerName,
		Username:           m.Username,
		IsActive:           m.IsActive,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToAccountView projects an account for display. The card number is masked.
func ToAccountView(d domain.Account) domain.AccountView {
	return domain.AccountView{
		AccountID:       d.AccountID,
		MaskedAccountID: cardcrypto.MaskTail(d.AccountID),
		Balance:         d.Balance,
		OwnerName:       d.OwnerName,
		Username:        d.Username,
		IsActive:        d.IsActive,
	}
}
