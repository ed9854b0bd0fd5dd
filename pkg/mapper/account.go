package mapper

import (
	"github.com/amirasaad/ebanking/pkg/domain/account"
	"github.com/amirasaad/ebanking/pkg/dto"
)

// AccountToDomain maps a dto.AccountRecord to a domain Account.
func AccountToDomain(rec dto.AccountRecord) *account.Account {
	return account.New().
		WithUserID(rec.UserID).
		WithIBAN(rec.IBAN).
		WithType(rec.Type).
		WithBalance(rec.Balance).
		Build()
}

// AccountToRecord maps a domain Account to its store record.
func AccountToRecord(a *account.Account) dto.AccountRecord {
	return dto.AccountRecord{
		UserID:  a.UserID,
		IBAN:    a.IBAN,
		Type:    a.Type,
		Balance: a.Balance,
	}
}

// AccountsToRecords maps accounts in order.
func AccountsToRecords(accounts []*account.Account) []dto.AccountRecord {
	recs := make([]dto.AccountRecord, 0, len(accounts))
	for _, a := range accounts {
		recs = append(recs, AccountToRecord(a))
	}
	return recs
}
