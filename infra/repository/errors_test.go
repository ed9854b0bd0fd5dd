package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/amirasaad/ebanking/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFSErrorToDomain(t *testing.T) {
	t.Parallel()

	other := errors.New("disk on fire")
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "nil error returns nil",
			input:    nil,
			expected: nil,
		},
		{
			name:     "not exist maps to ErrStoreNotFound",
			input:    fs.ErrNotExist,
			expected: domain.ErrStoreNotFound,
		},
		{
			name:     "path error for missing file maps to ErrStoreNotFound",
			input:    &os.PathError{Op: "open", Path: "users_file.txt", Err: os.ErrNotExist},
			expected: domain.ErrStoreNotFound,
		},
		{
			name:     "wrapped not exist maps correctly",
			input:    fmt.Errorf("outer: %w", fs.ErrNotExist),
			expected: domain.ErrStoreNotFound,
		},
		{
			name:     "other error returns original",
			input:    other,
			expected: other,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := MapFSErrorToDomain(tt.input)
			if tt.expected == nil {
				assert.NoError(t, result)
				return
			}
			require.Error(t, result)
			assert.ErrorIs(t, result, tt.expected)
		})
	}
}

func TestMapFSErrorToDomain_KeepsCause(t *testing.T) {
	t.Parallel()
	err := MapFSErrorToDomain(fs.ErrNotExist)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("success returns nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, WrapError("users", "open", "u.txt", func() error { return nil }))
	})

	t.Run("failure returns StoreError", func(t *testing.T) {
		t.Parallel()
		err := WrapError("users", "open", "u.txt", func() error { return fs.ErrPermission })
		var storeErr *StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "users", storeErr.Store)
		assert.Equal(t, "open", storeErr.Op)
		assert.Equal(t, "u.txt", storeErr.Path)
		assert.ErrorIs(t, err, fs.ErrPermission)
		assert.False(t, errors.Is(err, domain.ErrStoreNotFound))
		assert.Contains(t, err.Error(), "users store open u.txt")
	})
}

func TestLineError(t *testing.T) {
	t.Parallel()
	err := error(&LineError{Store: "accounts", Line: 3, Text: "U1,RO01", Err: ErrFieldCount})
	var le *LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.Line)
	assert.ErrorIs(t, err, ErrFieldCount)
	assert.Equal(t, "accounts store line 3: wrong number of fields", err.Error())
	assert.False(t, errors.As(ErrFieldCount, &le))
}
