package repository

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amirasaad/ebanking/pkg/domain"
	"github.com/amirasaad/ebanking/pkg/domain/transaction"
	"github.com/amirasaad/ebanking/pkg/dto"
)

// Delimiter separates fields on a store line. Values are not escaped, so a
// field containing a comma produces a line that fails to decode on reload.
// Line breaks are refused on encode.
const Delimiter = ","

var (
	// ErrFieldCount is returned when a line has the wrong number of fields.
	ErrFieldCount = errors.New("wrong number of fields")
	// ErrBadNumber is returned when a numeric field cannot be parsed.
	ErrBadNumber = errors.New("malformed number")
	// ErrBadDate is returned when a date field is not YYYY-MM-DD.
	ErrBadDate = errors.New("malformed date")
	// ErrLineBreak is returned by Encode when a field would span lines.
	ErrLineBreak = fmt.Errorf("field contains a line break: %w", domain.ErrValidation)
)

// Codec converts a single store line to and from a record.
type Codec[T any] interface {
	Encode(rec T) (string, error)
	Decode(line string) (T, error)
}

// UserCodec encodes users as "id,firstName,lastName".
type UserCodec struct{}

// AccountCodec encodes accounts as "userId,iban,type,balance".
type AccountCodec struct{}

// TransactionCodec encodes transactions as "iban,amount,date".
type TransactionCodec struct{}

var (
	_ Codec[dto.UserRecord]        = UserCodec{}
	_ Codec[dto.AccountRecord]     = AccountCodec{}
	_ Codec[dto.TransactionRecord] = TransactionCodec{}
)

func (UserCodec) Encode(rec dto.UserRecord) (string, error) {
	return join("id", rec.ID, "first name", rec.FirstName, "last name", rec.LastName)
}

func (UserCodec) Decode(line string) (dto.UserRecord, error) {
	parts, err := split(line, 3)
	if err != nil {
		return dto.UserRecord{}, err
	}
	return dto.UserRecord{ID: parts[0], FirstName: parts[1], LastName: parts[2]}, nil
}

func (AccountCodec) Encode(rec dto.AccountRecord) (string, error) {
	return join("user id", rec.UserID, "iban", rec.IBAN, "type", rec.Type, "balance", formatFloat(rec.Balance))
}

func (AccountCodec) Decode(line string) (dto.AccountRecord, error) {
	parts, err := split(line, 4)
	if err != nil {
		return dto.AccountRecord{}, err
	}
	balance, err := parseFloat("balance", parts[3])
	if err != nil {
		return dto.AccountRecord{}, err
	}
	return dto.AccountRecord{UserID: parts[0], IBAN: parts[1], Type: parts[2], Balance: balance}, nil
}

func (TransactionCodec) Encode(rec dto.TransactionRecord) (string, error) {
	return join(
		"iban", rec.IBAN,
		"amount", formatFloat(rec.Amount),
		"date", rec.Date.Format(transaction.DateLayout),
	)
}

func (TransactionCodec) Decode(line string) (dto.TransactionRecord, error) {
	parts, err := split(line, 3)
	if err != nil {
		return dto.TransactionRecord{}, err
	}
	amount, err := parseFloat("amount", parts[1])
	if err != nil {
		return dto.TransactionRecord{}, err
	}
	date, err := transaction.ParseDate(parts[2])
	if err != nil {
		return dto.TransactionRecord{}, fmt.Errorf("%w: %q", ErrBadDate, parts[2])
	}
	return dto.TransactionRecord{IBAN: parts[0], Amount: amount, Date: date}, nil
}

// join takes name/value pairs and joins the values.
func join(pairs ...string) (string, error) {
	values := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.ContainsAny(pairs[i+1], "\r\n") {
			return "", fmt.Errorf("%w: %s %q", ErrLineBreak, pairs[i], pairs[i+1])
		}
		values = append(values, pairs[i+1])
	}
	return strings.Join(values, Delimiter), nil
}

func split(line string, want int) ([]string, error) {
	parts := strings.Split(line, Delimiter)
	if len(parts) != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(parts), want)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrBadNumber, field, s)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
