// Package account provides business logic for bank accounts.
//
// The service keeps an in-memory cache loaded once at construction. Adding an
// account only touches the cache; deleting one rewrites the store from it.
package account

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/amirasaad/ebanking/pkg/domain"
	"github.com/amirasaad/ebanking/pkg/domain/account"
	"github.com/amirasaad/ebanking/pkg/mapper"
	accountrepo "github.com/amirasaad/ebanking/pkg/repository/account"
)

// Service provides business logic for account operations.
type Service struct {
	repo   accountrepo.Repository
	logger *slog.Logger

	mu       sync.RWMutex
	accounts []*account.Account
	loadErr  error
}

// New creates a Service and loads the accounts store once. Load failures are
// logged, not returned: a missing store starts empty, any other failure is
// kept and reported by LoadErr.
func New(
	ctx context.Context,
	repo accountrepo.Repository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		repo:   repo,
		logger: logger.With("service", "account"),
	}
	if err := s.Reload(ctx); err != nil {
		s.loadErr = err
	}
	return s
}

// LoadErr returns the error from the initial load, if the store existed but
// could not be read.
func (s *Service) LoadErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Reload replaces the cache with the accounts currently in the store.
func (s *Service) Reload(ctx context.Context) error {
	recs, err := s.repo.LoadAll(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrStoreNotFound) {
			s.logger.Error("failed to load accounts", "error", err)
			return err
		}
		s.logger.Info("accounts store not found, starting empty", "error", err)
	}

	accounts := make([]*account.Account, 0, len(recs))
	for _, rec := range recs {
		accounts = append(accounts, mapper.AccountToDomain(rec))
	}

	s.mu.Lock()
	s.accounts = accounts
	s.loadErr = nil
	s.mu.Unlock()
	return nil
}

// GetAccountsByUserID returns the cached accounts owned by userID.
func (s *Service) GetAccountsByUserID(userID string) []*account.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*account.Account
	for _, a := range s.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

// AddAccount appends a to the cache. Nothing is written to the store.
func (s *Service) AddAccount(a *account.Account) {
	if a == nil {
		return
	}
	s.mu.Lock()
	s.accounts = append(s.accounts, a)
	s.mu.Unlock()
}

// GetAllAccounts returns the cached accounts.
func (s *Service) GetAllAccounts() []*account.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*account.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// SaveAccounts overwrites the store with accounts.
func (s *Service) SaveAccounts(ctx context.Context, accounts []*account.Account) error {
	if err := s.repo.SaveAll(ctx, mapper.AccountsToRecords(accounts)); err != nil {
		s.logger.Error("failed to save accounts", "count", len(accounts), "error", err)
		return err
	}
	return nil
}

// DeleteAccount removes every account with iban from the cache and
// persists the cache. It reports false without writing when no account
// matches. Transactions recorded against the IBAN are left in place.
func (s *Service) DeleteAccount(ctx context.Context, iban string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := account.New().WithIBAN(iban).Build()
	remaining := make([]*account.Account, 0, len(s.accounts))
	var removed []string
	for _, a := range s.accounts {
		if a.SameIBAN(target) {
			removed = append(removed, a.UserID)
			continue
		}
		remaining = append(remaining, a)
	}
	if len(removed) == 0 {
		s.logger.Warn("account not found", "iban", iban)
		return false, nil
	}

	if err := s.repo.SaveAll(ctx, mapper.AccountsToRecords(remaining)); err != nil {
		s.logger.Error("failed to persist account deletion", "iban", iban, "error", err)
		return false, err
	}
	s.accounts = remaining
	s.logger.Info("account deleted", "iban", iban, "user_ids", removed)
	return true, nil
}

// Finalize reloads the store and writes it back, discarding accounts that
// were only ever added to the cache. It runs at shutdown.
func (s *Service) Finalize(ctx context.Context) error {
	if err := s.Reload(ctx); err != nil {
		return err
	}
	return s.SaveAccounts(ctx, s.GetAllAccounts())
}
