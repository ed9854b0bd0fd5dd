package transaction

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ebanking/infra/repository"
	"github.com/amirasaad/ebanking/pkg/dto"
	"github.com/amirasaad/ebanking/pkg/repository/transaction"
	"github.com/spf13/afero"
)

// StoreName labels the transactions store in logs and metrics.
const StoreName = "transactions"

type repo struct {
	lines *repository.LineRepository[dto.TransactionRecord]
}

// New returns a transactions repository backed by the file at path.
func New(fs afero.Fs, path string, logger *slog.Logger) transaction.Repository {
	store := repository.NewFileStore(fs, StoreName, path)
	return &repo{lines: repository.NewLineRepository[dto.TransactionRecord](store, repository.TransactionCodec{}, logger)}
}

func (r *repo) LoadAll(ctx context.Context) ([]dto.TransactionRecord, error) {
	return r.lines.LoadAll(ctx)
}

func (r *repo) Append(ctx context.Context, recs ...dto.TransactionRecord) error {
	return r.lines.Append(ctx, recs...)
}
