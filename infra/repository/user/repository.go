package user

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ebanking/infra/repository"
	"github.com/amirasaad/ebanking/pkg/dto"
	"github.com/amirasaad/ebanking/pkg/repository/user"
	"github.com/spf13/afero"
)

// StoreName labels the users store in logs and metrics.
const StoreName = "users"

type repo struct {
	lines *repository.LineRepository[dto.UserRecord]
}

// New returns a users repository backed by the file at path.
func New(fs afero.Fs, path string, logger *slog.Logger) user.Repository {
	store := repository.NewFileStore(fs, StoreName, path)
	return &repo{lines: repository.NewLineRepository[dto.UserRecord](store, repository.UserCodec{}, logger)}
}

func (r *repo) LoadAll(ctx context.Context) ([]dto.UserRecord, error) {
	return r.lines.LoadAll(ctx)
}

func (r *repo) SaveAll(ctx context.Context, recs []dto.UserRecord) error {
	return r.lines.SaveAll(ctx, recs)
}
