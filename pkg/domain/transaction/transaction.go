package transaction

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/amirasaad/ebanking/pkg/domain"
)

// DateLayout is the calendar format used for transaction dates.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidTransaction is returned when a transaction has an empty IBAN
	// or an amount that is zero or not finite.
	ErrInvalidTransaction = fmt.Errorf("invalid transaction: %w", domain.ErrValidation)
)

// Transaction is an append-only entry against an account, identified by the
// account IBAN. Negative amounts are debits, positive amounts credits.
type Transaction struct {
	IBAN   string    `json:"iban"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// New creates a Transaction. The IBAN is trimmed and must not be blank or
// span lines; the amount must be finite and not exactly zero. The date is
// truncated to a calendar day in UTC.
func New(iban string, amount float64, date time.Time) (*Transaction, error) {
	iban = strings.TrimSpace(iban)
	if iban == "" {
		return nil, fmt.Errorf("%w: iban cannot be empty", ErrInvalidTransaction)
	}
	if strings.ContainsAny(iban, "\r\n") {
		return nil, fmt.Errorf("%w: iban contains a line break", ErrInvalidTransaction)
	}
	if amount == 0 {
		return nil, fmt.Errorf("%w: amount cannot be 0", ErrInvalidTransaction)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: amount must be a finite number", ErrInvalidTransaction)
	}
	return &Transaction{
		IBAN:   iban,
		Amount: amount,
		Date:   Day(date),
	}, nil
}

// Day returns t as midnight UTC of its calendar day, dropping time of day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// IsDebit reports whether the transaction takes money out of the account.
func (t *Transaction) IsDebit() bool {
	return t.Amount < 0
}

// Equal reports whether both transactions carry the same IBAN, amount and day.
func (t *Transaction) Equal(other *Transaction) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.IBAN == other.IBAN && t.Amount == other.Amount && Day(t.Date).Equal(Day(other.Date))
}

func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction{iban=%q, amount=%v, date=%s}", t.IBAN, t.Amount, t.Date.Format(DateLayout))
}
