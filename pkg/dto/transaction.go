package dto

import "time"

// TransactionRecord is the raw shape of one line of the transaction store.
type TransactionRecord struct {
	IBAN   string    // Account the entry belongs to, references AccountRecord.IBAN
	Amount float64   // Signed amount; negative for debits
	Date   time.Time // Calendar day; time of day is not stored
}
