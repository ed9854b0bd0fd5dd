package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/ebanking/pkg/config"
	"github.com/amirasaad/ebanking/pkg/domain/user"
	accountrepo "github.com/amirasaad/ebanking/pkg/repository/account"
	txrepo "github.com/amirasaad/ebanking/pkg/repository/transaction"
	userrepo "github.com/amirasaad/ebanking/pkg/repository/user"
	"github.com/amirasaad/ebanking/pkg/service/account"
	"github.com/amirasaad/ebanking/pkg/service/transaction"
	usersvc "github.com/amirasaad/ebanking/pkg/service/user"
	"github.com/spf13/afero"
)

// Deps contains the infrastructure the services are built on.
type Deps struct {
	Fs              afero.Fs
	Logger          *slog.Logger
	UserRepo        userrepo.Repository
	AccountRepo     accountrepo.Repository
	TransactionRepo txrepo.Repository
}

type App struct {
	Deps               *Deps
	Config             *config.App
	UserService        *usersvc.Service
	AccountService     *account.Service
	TransactionService *transaction.Service

	// Users is the session's registered users, filled by Startup.
	Users *user.Set

	shutdown sync.Once
}

// New builds the services. The account store is read here, once.
func New(ctx context.Context, deps *Deps, cfg *config.App) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &App{
		Deps:               deps,
		Config:             cfg,
		UserService:        usersvc.New(deps.UserRepo, deps.Logger),
		AccountService:     account.New(ctx, deps.AccountRepo, deps.Logger),
		TransactionService: transaction.New(deps.TransactionRepo, deps.Logger),
		Users:              user.NewSet(),
	}
}

// Startup loads the users into the session set and the transaction history
// into the session view. Missing stores are not an error.
func (a *App) Startup(ctx context.Context) error {
	if err := a.AccountService.LoadErr(); err != nil {
		a.Deps.Logger.Warn("accounts were not loaded", "error", err)
	}

	users, err := a.UserService.GetAllUsers(ctx)
	if err != nil {
		return err
	}
	a.Users = user.NewSet(users...)

	if err := a.TransactionService.Reload(ctx); err != nil {
		return err
	}
	a.Deps.Logger.Debug("startup complete",
		"users", a.Users.Len(),
		"accounts", len(a.AccountService.GetAllAccounts()),
		"transactions", len(a.TransactionService.GetAllTransactions()),
	)
	return nil
}

// Shutdown rewrites the account store from itself and compacts the
// transaction store. Failures are logged and never returned. Only the first
// call has any effect.
func (a *App) Shutdown(ctx context.Context) {
	a.shutdown.Do(func() {
		logger := a.Deps.Logger
		if err := a.AccountService.Finalize(ctx); err != nil {
			logger.Error("failed to save final list of accounts", "error", err)
		}
		if err := a.TransactionService.SaveTransactions(ctx); err != nil {
			logger.Error("failed to save transactions", "error", err)
		}
	})
}
