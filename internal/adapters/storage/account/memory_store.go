package account

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	domain "motive/internal/domain/account"
)

// MemoryStore implements Store in memory. Accounts are seeded at startup
// from configuration; only the login lockout counters mutate at runtime.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

// NewMemoryStore creates an empty account store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[string]domain.Account)}
}

// GetByID retrieves an Account by its ID.
// PRE: id is non-empty
// POST: Returns the account or ErrNotFound
func (s *MemoryStore) GetByID(ctx context.Context, id string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.accounts[id]; ok {
		return a, nil
	}
	return domain.Account{}, ErrNotFound
}

// GetByEmail retrieves an Account by email, case-insensitively.
// PRE: email is non-empty
// POST: Returns the account or ErrNotFound
func (s *MemoryStore) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return domain.Account{}, ErrNotFound
}

// Save persists an Account (insert or replace), assigning an ID when absent.
// PRE: value has been validated
// POST: Account is stored under its ID
func (s *MemoryStore) Save(ctx context.Context, value domain.Account) error {
	if value.ID == "" {
		value.ID = uuid.New().String()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[value.ID] = value
	return nil
}

// Count returns the number of stored accounts.
// POST: Returns count >= 0
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts), nil
}
