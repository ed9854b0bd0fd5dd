package repository

import (
	"context"
	"fmt"
	"log/slog"
)

// LineRepository stores records of type T one per line in a FileStore.
type LineRepository[T any] struct {
	store  *FileStore
	codec  Codec[T]
	logger *slog.Logger
}

// NewLineRepository creates a new line repository
func NewLineRepository[T any](store *FileStore, codec Codec[T], logger *slog.Logger) *LineRepository[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &LineRepository[T]{
		store:  store,
		codec:  codec,
		logger: logger.With("store", store.Name(), "path", store.Path()),
	}
}

// LoadAll decodes every line of the store in file order. Lines that fail to
// decode are logged, counted and skipped; only store-level failures are
// returned.
func (r *LineRepository[T]) LoadAll(ctx context.Context) ([]T, error) {
	lines, err := r.store.ReadLines(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(lines))
	for _, line := range lines {
		rec, err := r.codec.Decode(line.Text)
		if err != nil {
			lineErr := &LineError{Store: r.store.Name(), Line: line.Number, Text: line.Text, Err: err}
			r.logger.Warn("skipping malformed line", "line", line.Number, "text", line.Text, "error", lineErr)
			recordSkipped(r.store.Name())
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// SaveAll overwrites the store with recs.
func (r *LineRepository[T]) SaveAll(ctx context.Context, recs []T) error {
	lines, err := r.encode(recs)
	if err != nil {
		return err
	}
	return r.store.WriteLines(ctx, lines)
}

// Append adds recs to the end of the store without touching existing lines.
func (r *LineRepository[T]) Append(ctx context.Context, recs ...T) error {
	lines, err := r.encode(recs)
	if err != nil {
		return err
	}
	return r.store.AppendLines(ctx, lines)
}

// encode fails as a whole, so nothing is written when one record is bad.
func (r *LineRepository[T]) encode(recs []T) ([]string, error) {
	lines := make([]string, 0, len(recs))
	for i, rec := range recs {
		line, err := r.codec.Encode(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s record %d: %w", r.store.Name(), i+1, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}
