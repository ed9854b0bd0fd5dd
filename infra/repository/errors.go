package repository

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/amirasaad/ebanking/pkg/domain"
)

// StoreError describes a store-level failure: the store could not be
// opened, read or written. Unlike a LineError it is never recoverable.
type StoreError struct {
	Store string
	Op    string
	Path  string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s store %s %s: %v", e.Store, e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// LineError describes a single line that could not be decoded. Loaders skip
// such lines and keep going.
type LineError struct {
	Store string
	Line  int
	Text  string
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s store line %d: %v", e.Store, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// MapFSErrorToDomain converts filesystem errors to domain errors.
// This keeps infrastructure concerns (file errors) within the infrastructure layer.
// A missing file maps to domain.ErrStoreNotFound; the original error stays in the chain.
func MapFSErrorToDomain(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", domain.ErrStoreNotFound, err)
	}
	return err
}

// WrapError runs a filesystem operation and wraps any failure in a StoreError.
//
// Usage:
//
//	err := WrapError(s.name, "open", s.path, func() error {
//	    f, err = s.fs.Open(s.path)
//	    return err
//	})
func WrapError(store, op, path string, fn func() error) error {
	err := MapFSErrorToDomain(fn())
	if err == nil {
		return nil
	}
	return &StoreError{Store: store, Op: op, Path: path, Err: err}
}
