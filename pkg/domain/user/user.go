package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/ebanking/pkg/domain"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrUserName is returned when a user is built with a missing first or
	// last name.
	ErrUserName = fmt.Errorf("invalid names for user: %w", domain.ErrValidation)
	// ErrExistingUser is returned when a user with the same ID is already
	// present in the target set.
	ErrExistingUser = fmt.Errorf("user already exists: %w", domain.ErrAlreadyExists)
	// ErrInvalidID is returned when a user is registered without an ID.
	ErrInvalidID = fmt.Errorf("invalid user id: %w", domain.ErrValidation)
)

var validate = validator.New()

const lineBreaks = "\r\n"

// User represents a bank customer. Two users are the same entity when
// their IDs match, regardless of names.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// New creates a User, rejecting empty first or last names. Surrounding
// whitespace is trimmed from every field and line breaks are refused, so a
// user reads back from the store exactly as it was built.
func New(id, firstName, lastName string) (*User, error) {
	u := &User{
		ID:        strings.TrimSpace(id),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}
	if strings.ContainsAny(u.ID, lineBreaks) {
		return nil, fmt.Errorf("%w: line break in id", ErrInvalidID)
	}
	if strings.ContainsAny(u.FirstName+u.LastName, lineBreaks) {
		return nil, fmt.Errorf("%w: line break in name", ErrUserName)
	}
	if err := validate.Struct(u); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("%w: %s is required", ErrUserName, verrs[0].Field())
		}
		return nil, fmt.Errorf("%w: %v", ErrUserName, err)
	}
	return u, nil
}

// Equal reports whether u and other identify the same user.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.ID == other.ID
}

// FullName returns "first last".
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) String() string {
	return fmt.Sprintf("User{id=%q, firstName=%q, lastName=%q}", u.ID, u.FirstName, u.LastName)
}
