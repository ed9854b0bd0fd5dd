package account

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ebanking/infra/repository"
	"github.com/amirasaad/ebanking/pkg/dto"
	"github.com/amirasaad/ebanking/pkg/repository/account"
	"github.com/spf13/afero"
)

// StoreName labels the accounts store in logs and metrics.
const StoreName = "accounts"

type repo struct {
	lines *repository.LineRepository[dto.AccountRecord]
}

// New returns an accounts repository backed by the file at path.
func New(fs afero.Fs, path string, logger *slog.Logger) account.Repository {
	store := repository.NewFileStore(fs, StoreName, path)
	return &repo{lines: repository.NewLineRepository[dto.AccountRecord](store, repository.AccountCodec{}, logger)}
}

func (r *repo) LoadAll(ctx context.Context) ([]dto.AccountRecord, error) {
	return r.lines.LoadAll(ctx)
}

func (r *repo) SaveAll(ctx context.Context, recs []dto.AccountRecord) error {
	return r.lines.SaveAll(ctx, recs)
}
