package coach

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	domain "motive/internal/domain/coach"
)

// MemoryStore implements Store over an ordered in-memory collection.
type MemoryStore struct {
	mu      sync.RWMutex
	records []domain.Coach
}

// NewMemoryStore creates an empty coach store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GetByID retrieves a Coach by its ID.
// PRE: id is non-empty
// POST: Returns the record or ErrNotFound
func (s *MemoryStore) GetByID(ctx context.Context, id string) (domain.Coach, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.records {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Coach{}, ErrNotFound
}

// Add appends a Coach to the collection, assigning an ID when absent.
// PRE: value has been validated
// POST: Record is appended; the stored record (with ID) is returned
func (s *MemoryStore) Add(ctx context.Context, value domain.Coach) (domain.Coach, error) {
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
func (s *MemoryStore) Update(ctx context.Context, id string, patch Patch) (domain.Coach, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		merged := applyPatch(s.records[i], patch)
		if err := merged.Validate(); err != nil {
			return domain.Coach{}, err
		}
		s.records[i] = merged
		return merged, nil
	}
	return domain.Coach{}, ErrNotFound
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

// List retrieves Coaches matching the filter, preserving insertion order.
// PRE: filter has valid parameters
// POST: Returns a new slice
func (s *MemoryStore) List(ctx context.Context, filter ListFilter) ([]domain.Coach, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []domain.Coach
	skipped := 0
	for _, c := range s.records {
		if !matches(c, filter) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		results = append(results, c)
		if filter.Limit > 0 && len(results) >= filter.Limit {
			break
		}
	}
	return results, nil
}

// Count returns the number of Coaches matching the filter, ignoring
// Limit and Offset.
// PRE: filter has valid parameters
// POST: Returns count >= 0
func (s *MemoryStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, c := range s.records {
		if matches(c, filter) {
			count++
		}
	}
	return count, nil
}

func matches(c domain.Coach, filter ListFilter) bool {
	if filter.School != "" && !strings.EqualFold(c.School, filter.School) {
		return false
	}
	if filter.Specialization != "" && !strings.EqualFold(c.Specialization, filter.Specialization) {
		return false
	}
	if filter.Team != "" && c.Team != filter.Team {
		return false
	}
	if filter.Search != "" && !searchMatch(c.SearchFields(), filter.Search) {
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

func applyPatch(c domain.Coach, p Patch) domain.Coach {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Team != nil {
		c.Team = *p.Team
	}
	if p.School != nil {
		c.School = *p.School
	}
	if p.Specialization != nil {
		c.Specialization = *p.Specialization
	}
	if p.Experience != nil {
		c.Experience = *p.Experience
	}
	if p.ProfilePicture != nil {
		c.ProfilePicture = *p.ProfilePicture
	}
	if p.Achievements != nil {
		c.Achievements = *p.Achievements
	}
	return c
}
