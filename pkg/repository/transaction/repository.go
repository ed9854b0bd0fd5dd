package transaction

import (
	"context"

	"github.com/amirasaad/ebanking/pkg/dto"
)

// Repository defines the interface for the append-only transactions store.
type Repository interface {
	// LoadAll returns every decodable transaction record in store order.
	LoadAll(ctx context.Context) ([]dto.TransactionRecord, error)

	// Append adds recs after the existing lines, one line per record.
	Append(ctx context.Context, recs ...dto.TransactionRecord) error
}
