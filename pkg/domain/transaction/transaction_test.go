package transaction_test

import (
	"math"
	"testing"
	"time"

	"github.com/amirasaad/ebanking/pkg/domain"
	"github.com/amirasaad/ebanking/pkg/domain/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 1, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name    string
		iban    string
		amount  float64
		wantErr bool
	}{
		{"debit", "RO01BANK0000", -50, false},
		{"credit", "RO01BANK0000", 12.5, false},
		{"zero amount", "RO01BANK0000", 0, true},
		{"empty iban", "", 10, true},
		{"whitespace iban", " \t", 10, true},
		{"line break in iban", "RO01\nRO02", 10, true},
		{"NaN amount", "RO01BANK0000", math.NaN(), true},
		{"infinite amount", "RO01BANK0000", math.Inf(-1), true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tx, err := transaction.New(tt.iban, tt.amount, at)
			if tt.wantErr {
				require.ErrorIs(t, err, transaction.ErrInvalidTransaction)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.amount < 0, tx.IsDebit())
			assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), tx.Date)
		})
	}
}

func TestNew_TrimsIBAN(t *testing.T) {
	t.Parallel()
	tx, err := transaction.New(" RO01 ", -50, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "RO01", tx.IBAN)
}

func TestParseDate(t *testing.T) {
	t.Parallel()
	d, err := transaction.ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.True(t, d.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))

	_, err = transaction.ParseDate("15.01.2024")
	assert.Error(t, err)
}

func TestTransaction_Equal(t *testing.T) {
	t.Parallel()
	a, err := transaction.New("RO01", -50, time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	b, err := transaction.New("RO01", -50, time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	c, err := transaction.New("RO02", -50, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, `Transaction{iban="RO01", amount=-50, date=2024-01-15}`, a.String())
}
