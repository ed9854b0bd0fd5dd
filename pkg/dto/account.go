package dto

// AccountRecord is the raw shape of one line of the account store.
type AccountRecord struct {
	UserID  string  // Owning user, references UserRecord.ID
	IBAN    string  // Account identifier
	Type    string  // Free-form account type, e.g. "savings"
	Balance float64 // Stored balance, never derived from transactions
}
