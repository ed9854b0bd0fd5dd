package account

import (
	"context"

	"github.com/amirasaad/ebanking/pkg/dto"
)

// Repository defines the interface for the accounts store.
type Repository interface {
	// LoadAll returns every decodable account record in store order.
	LoadAll(ctx context.Context) ([]dto.AccountRecord, error)

	// SaveAll overwrites the store with recs.
	SaveAll(ctx context.Context, recs []dto.AccountRecord) error
}
