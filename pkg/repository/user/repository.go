package user

import (
	"context"

	"github.com/amirasaad/ebanking/pkg/dto"
)

// Repository defines the interface for the users store.
// The store is always read and written as a whole.
type Repository interface {
	// LoadAll returns every decodable user record in store order.
	// Malformed lines are skipped.
	LoadAll(ctx context.Context) ([]dto.UserRecord, error)

	// SaveAll overwrites the store with recs.
	SaveAll(ctx context.Context, recs []dto.UserRecord) error
}
