// Package transaction provides business logic for the append-only
// transaction history of accounts.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/ebanking/pkg/domain"
	"github.com/amirasaad/ebanking/pkg/domain/transaction"
	"github.com/amirasaad/ebanking/pkg/dto"
	"github.com/amirasaad/ebanking/pkg/mapper"
	txrepo "github.com/amirasaad/ebanking/pkg/repository/transaction"
)

// Service provides business logic for transaction operations.
//
// New transactions are appended to the store one line at a time; the cache
// only holds the session view and is never written back.
type Service struct {
	repo   txrepo.Repository
	logger *slog.Logger
	now    func() time.Time

	mu      sync.RWMutex
	session []*transaction.Transaction
}

// New creates a new Service with a repository and logger.
func New(
	repo txrepo.Repository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: logger.With("service", "transaction"),
		now:    time.Now,
	}
}

// Reload replaces the session view with the transactions in the store.
func (s *Service) Reload(ctx context.Context) error {
	txs, err := s.load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.session = txs
	s.mu.Unlock()
	return nil
}

// GetTransactionsByAccountIBAN reads the store and returns the transactions
// whose IBAN matches iban exactly, in store order. iban is trimmed first,
// the same way stored IBANs are.
func (s *Service) GetTransactionsByAccountIBAN(
	ctx context.Context,
	iban string,
) ([]*transaction.Transaction, error) {
	txs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	iban = strings.TrimSpace(iban)
	var out []*transaction.Transaction
	for _, t := range txs {
		if t.IBAN == iban {
			out = append(out, t)
		}
	}
	return out, nil
}

// NewTransaction builds a transaction from user input. An empty date means
// today; otherwise it must be YYYY-MM-DD.
func (s *Service) NewTransaction(iban string, amount float64, date string) (*transaction.Transaction, error) {
	day := s.now()
	if date != "" {
		parsed, err := transaction.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("%w: date %q is not YYYY-MM-DD", transaction.ErrInvalidTransaction, date)
		}
		day = parsed
	}
	return transaction.New(iban, amount, day)
}

// AddTransaction validates t, appends it to the store as a single line and
// records it in the session view.
func (s *Service) AddTransaction(ctx context.Context, t *transaction.Transaction) error {
	if t == nil {
		return fmt.Errorf("%w: nil transaction", transaction.ErrInvalidTransaction)
	}
	rec, err := mapper.TransactionToRecord(t)
	if err != nil {
		return err
	}
	if err := s.repo.Append(ctx, rec); err != nil {
		s.logger.Error("failed to append transaction", "iban", t.IBAN, "error", err)
		return err
	}

	s.mu.Lock()
	s.session = append(s.session, t)
	s.mu.Unlock()
	s.logger.Info("transaction added", "iban", t.IBAN, "amount", t.Amount)
	return nil
}

// GetAllTransactions returns the session view without reading the store.
func (s *Service) GetAllTransactions() []*transaction.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*transaction.Transaction, len(s.session))
	copy(out, s.session)
	return out
}

// SaveTransactions is the shutdown flush. Every transaction is appended to
// the store when it is added, so nothing is pending and the store is left
// untouched; lines that were skipped on load stay in the file.
func (s *Service) SaveTransactions(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Debug("transactions already persisted", "session", len(s.GetAllTransactions()))
	return nil
}

func (s *Service) load(ctx context.Context) ([]*transaction.Transaction, error) {
	recs, err := s.repo.LoadAll(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrStoreNotFound) {
			s.logger.Error("failed to load transactions", "error", err)
			return nil, err
		}
		s.logger.Info("transactions store not found, starting empty", "error", err)
	}
	return s.decode(recs), nil
}

func (s *Service) decode(recs []dto.TransactionRecord) []*transaction.Transaction {
	txs := make([]*transaction.Transaction, 0, len(recs))
	for _, rec := range recs {
		t, err := mapper.TransactionToDomain(rec)
		if err != nil {
			s.logger.Warn("skipping invalid transaction", "iban", rec.IBAN, "error", err)
			continue
		}
		txs = append(txs, t)
	}
	return txs
}
