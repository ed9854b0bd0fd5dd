package initializer

import (
	"fmt"
	"log/slog"
	"os"

	accountrepo "github.com/amirasaad/ebanking/infra/repository/account"
	txrepo "github.com/amirasaad/ebanking/infra/repository/transaction"
	userrepo "github.com/amirasaad/ebanking/infra/repository/user"
	"github.com/amirasaad/ebanking/pkg/app"
	"github.com/amirasaad/ebanking/pkg/config"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// InitializeDependencies initializes all the application dependencies
// against the real filesystem, logging to stderr. Every log line carries
// a per-process session id.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	if cfg == nil || cfg.Store == nil || cfg.Log == nil {
		return nil, fmt.Errorf("incomplete configuration")
	}
	logger := SetupLogger(cfg.Log, os.Stderr).With("session", uuid.NewString())
	return NewDeps(cfg, afero.NewOsFs(), logger), nil
}

// NewDeps wires the file repositories for cfg onto fs.
func NewDeps(cfg *config.App, fs afero.Fs, logger *slog.Logger) *app.Deps {
	logger.Debug("Initializing file stores",
		"users", cfg.Store.UsersPath(),
		"accounts", cfg.Store.AccountsPath(),
		"transactions", cfg.Store.TransactionsPath(),
	)
	return &app.Deps{
		Fs:              fs,
		Logger:          logger,
		UserRepo:        userrepo.New(fs, cfg.Store.UsersPath(), logger),
		AccountRepo:     accountrepo.New(fs, cfg.Store.AccountsPath(), logger),
		TransactionRepo: txrepo.New(fs, cfg.Store.TransactionsPath(), logger),
	}
}
