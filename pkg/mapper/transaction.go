package mapper

import (
	"github.com/amirasaad/ebanking/pkg/domain/transaction"
	"github.com/amirasaad/ebanking/pkg/dto"
)

// TransactionToDomain maps a record to a Transaction. A blank IBAN or a zero
// amount fails with transaction.ErrInvalidTransaction.
func TransactionToDomain(rec dto.TransactionRecord) (*transaction.Transaction, error) {
	return transaction.New(rec.IBAN, rec.Amount, rec.Date)
}

// TransactionToRecord maps a Transaction to its store record, applying the
// same checks as TransactionToDomain.
func TransactionToRecord(t *transaction.Transaction) (dto.TransactionRecord, error) {
	valid, err := transaction.New(t.IBAN, t.Amount, t.Date)
	if err != nil {
		return dto.TransactionRecord{}, err
	}
	return dto.TransactionRecord{IBAN: valid.IBAN, Amount: valid.Amount, Date: valid.Date}, nil
}

// TransactionsToRecords maps transactions in order, stopping at the first
// invalid one.
func TransactionsToRecords(txs []*transaction.Transaction) ([]dto.TransactionRecord, error) {
	recs := make([]dto.TransactionRecord, 0, len(txs))
	for _, t := range txs {
		rec, err := TransactionToRecord(t)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
