package dto

// UserRecord is the raw, un-validated shape of one line of the user store.
type UserRecord struct {
	ID        string // User identifier
	FirstName string
	LastName  string
}
