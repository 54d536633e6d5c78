package team

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	domain "motive/internal/domain/team"
)

// MemoryStore implements Store over an ordered in-memory collection.
type MemoryStore struct {
	mu      sync.RWMutex
	records []domain.Team
}

// NewMemoryStore creates an empty team store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GetByID retrieves a Team by its ID.
// PRE: id is non-empty
// POST: Returns the record or ErrNotFound
func (s *MemoryStore) GetByID(ctx context.Context, id string) (domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.records {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Team{}, ErrNotFound
}

// GetByName retrieves a Team by exact name. Display-name references to
// teams resolve through this lookup.
// PRE: name is non-empty
// POST: Returns the first matching record or ErrNotFound
func (s *MemoryStore) GetByName(ctx context.Context, name string) (domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.records {
		if t.Name == name {
			return t, nil
		}
	}
	return domain.Team{}, ErrNotFound
}

// Add appends a Team to the collection, assigning an ID when absent.
// PRE: value has been validated
// POST: Record is appended; the stored record (with ID) is returned
func (s *MemoryStore) Add(ctx context.Context, value domain.Team) (domain.Team, error) {
	if value.ID == "" {
		value.ID = uuid.New().String()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, value)
	return value, nil
}

// Update applies a patch to the record with the given ID.
// PRE: id is non-empty
// POST: Matching record is shallow-merged with the patch; ErrNotFound if absent
func (s *MemoryStore) Update(ctx context.Context, id string, patch Patch) (domain.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		merged := applyPatch(s.records[i], patch)
		if err := merged.Validate(); err != nil {
			return domain.Team{}, err
		}
		s.records[i] = merged
		return merged, nil
	}
	return domain.Team{}, ErrNotFound
}

// Delete removes the record with the given ID.
// PRE: id is non-empty
// POST: Record is removed; ErrNotFound if absent
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// List retrieves Teams matching the filter, preserving insertion order.
// PRE: filter has valid parameters
// POST: Returns a new slice
func (s *MemoryStore) List(ctx context.Context, filter ListFilter) ([]domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []domain.Team
	skipped := 0
	for _, t := range s.records {
		if !matches(t, filter) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		results = append(results, t)
		if filter.Limit > 0 && len(results) >= filter.Limit {
			break
		}
	}
	return results, nil
}

// Count returns the number of Teams matching the filter, ignoring
// Limit and Offset.
// PRE: filter has valid parameters
// POST: Returns count >= 0
func (s *MemoryStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, t := range s.records {
		if matches(t, filter) {
			count++
		}
	}
	return count, nil
}

func matches(t domain.Team, filter ListFilter) bool {
	if filter.School != "" && !strings.EqualFold(t.School, filter.School) {
		return false
	}
	if filter.Sport != "" && !strings.EqualFold(t.Sport, filter.Sport) {
		return false
	}
	if filter.Search != "" && !searchMatch(t.SearchFields(), filter.Search) {
		return false
	}
	return true
}

func searchMatch(fields []string, query string) bool {
	q := strings.ToLower(query)
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func applyPatch(t domain.Team, p Patch) domain.Team {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Sport != nil {
		t.Sport = *p.Sport
	}
	if p.School != nil {
		t.School = *p.School
	}
	if p.Coach != nil {
		t.Coach = *p.Coach
	}
	return t
}
