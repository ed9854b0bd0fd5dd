// Package user provides business logic for user registration and lookup.
// Users are persisted as a whole set; every registration rewrites the store.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/amirasaad/ebanking/pkg/domain"
	"github.com/amirasaad/ebanking/pkg/domain/user"
	"github.com/amirasaad/ebanking/pkg/mapper"
	userrepo "github.com/amirasaad/ebanking/pkg/repository/user"
)

// Service provides business logic for user operations.
type Service struct {
	repo   userrepo.Repository
	logger *slog.Logger

	mu    sync.RWMutex
	users []*user.User
}

// New creates a new Service with a repository and logger.
func New(
	repo userrepo.Repository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: logger.With("service", "user"),
	}
}

// Reload replaces the cache with the users currently in the store.
// A missing store empties the cache; records with invalid names are skipped.
func (s *Service) Reload(ctx context.Context) error {
	recs, err := s.repo.LoadAll(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrStoreNotFound) {
			s.logger.Error("failed to load users", "error", err)
			return err
		}
		s.logger.Info("users store not found, starting empty", "error", err)
	}

	users := make([]*user.User, 0, len(recs))
	for _, rec := range recs {
		u, err := mapper.UserToDomain(rec)
		if err != nil {
			s.logger.Warn("skipping invalid user", "id", rec.ID, "error", err)
			continue
		}
		users = append(users, u)
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return nil
}

// GetAllUsers reloads the store and returns every user in store order.
func (s *Service) GetAllUsers(ctx context.Context) ([]*user.User, error) {
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s.Users(), nil
}

// Users returns the cached users without touching the store.
func (s *Service) Users() []*user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*user.User, len(s.users))
	copy(out, s.users)
	return out
}

// AddUser registers u in set and persists the whole set.
//
// u is re-validated the way user.New does and its trimmed form is what gets
// registered. It fails with user.ErrInvalidID when u has no ID, with
// user.ErrUserName for unusable names and with user.ErrExistingUser when set
// already holds the ID; set is unchanged in all cases. If persisting fails,
// the user is removed again so set keeps matching the store.
func (s *Service) AddUser(
	ctx context.Context,
	set *user.Set,
	u *user.User,
) error {
	if set == nil {
		return fmt.Errorf("%w: nil user set", domain.ErrValidation)
	}
	if u == nil || strings.TrimSpace(u.ID) == "" {
		return user.ErrInvalidID
	}
	valid, err := user.New(u.ID, u.FirstName, u.LastName)
	if err != nil {
		s.logger.Warn("rejected user", "id", u.ID, "error", err)
		return err
	}
	if set.Contains(valid.ID) {
		s.logger.Warn("user already exists", "id", valid.ID)
		return user.ErrExistingUser
	}

	set.Add(valid)
	recs, err := mapper.UsersToRecords(set.All())
	if err == nil {
		err = s.repo.SaveAll(ctx, recs)
	}
	if err != nil {
		set.Remove(valid.ID)
		s.logger.Error("failed to persist users", "id", valid.ID, "error", err)
		return err
	}

	s.mu.Lock()
	s.users = append(s.users, valid)
	s.mu.Unlock()
	s.logger.Info("user added", "id", valid.ID)
	return nil
}

// SaveUsers persists the cached users, overwriting the store.
func (s *Service) SaveUsers(ctx context.Context) error {
	recs, err := mapper.UsersToRecords(s.Users())
	if err != nil {
		return err
	}
	return s.repo.SaveAll(ctx, recs)
}

// FindByName returns the first user in set whose first and last names match
// exactly.
func FindByName(set *user.Set, firstName, lastName string) (*user.User, bool) {
	for _, u := range set.All() {
		if u.FirstName == firstName && u.LastName == lastName {
			return u, true
		}
	}
	return nil, false
}
