package account

import (
	"fmt"
	"strings"
)

// Account is a bank account owned by a user. The IBAN is its identity key.
//
// Balance is a stored figure; it is never recomputed from the account's
// transaction history.
type Account struct {
	UserID  string  `json:"user_id"`
	IBAN    string  `json:"iban"`
	Type    string  `json:"type"`
	Balance float64 `json:"balance"`
}

// Builder provides a fluent API for constructing Account instances.
// String fields are trimmed. Accounts carry no invariants beyond their
// fields, so Build never fails.
type Builder struct {
	userID  string
	iban    string
	typ     string
	balance float64
}

// New creates an empty Builder.
func New() *Builder {
	return &Builder{}
}

// WithUserID sets the owning user.
func (b *Builder) WithUserID(userID string) *Builder {
	b.userID = strings.TrimSpace(userID)
	return b
}

// WithIBAN sets the account IBAN.
func (b *Builder) WithIBAN(iban string) *Builder {
	b.iban = strings.TrimSpace(iban)
	return b
}

// WithType sets the account type, e.g. "savings" or "current".
func (b *Builder) WithType(typ string) *Builder {
	b.typ = strings.TrimSpace(typ)
	return b
}

// WithBalance sets the stored balance.
func (b *Builder) WithBalance(balance float64) *Builder {
	b.balance = balance
	return b
}

// Build returns the Account.
func (b *Builder) Build() *Account {
	return &Account{
		UserID:  b.userID,
		IBAN:    b.iban,
		Type:    b.typ,
		Balance: b.balance,
	}
}

// SameIBAN reports whether a and other share the identity key.
func (a *Account) SameIBAN(other *Account) bool {
	if a == nil || other == nil {
		return false
	}
	return a.IBAN == other.IBAN
}

func (a *Account) String() string {
	return fmt.Sprintf("Account{userId=%q, iban=%q, type=%q, balance=%v}", a.UserID, a.IBAN, a.Type, a.Balance)
}
