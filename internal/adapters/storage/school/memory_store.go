package school

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	domain "motive/internal/domain/school"
)

// MemoryStore implements Store over an ordered in-memory collection.
type MemoryStore struct {
	mu      sync.RWMutex
	records []domain.School
}

// NewMemoryStore creates an empty school store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GetByID retrieves a School by its ID.
// PRE: id is non-empty
// POST: Returns the record or ErrNotFound
func (s *MemoryStore) GetByID(ctx context.Context, id string) (domain.School, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.School{}, ErrNotFound
}

// GetByName retrieves a School by exact name.
// PRE: name is non-empty
// POST: Returns the first matching record or ErrNotFound
func (s *MemoryStore) GetByName(ctx context.Context, name string) (domain.School, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.Name == name {
			return rec, nil
		}
	}
	return domain.School{}, ErrNotFound
}

// Add appends a School to the collection, assigning an ID when absent.
// PRE: value has been validated
// POST: Record is appended; the stored record (with ID) is returned
func (s *MemoryStore) Add(ctx context.Context, value domain.School) (domain.School, error) {
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
func (s *MemoryStore) Update(ctx context.Context, id string, patch Patch) (domain.School, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		merged := applyPatch(s.records[i], patch)
		if err := merged.Validate(); err != nil {
			return domain.School{}, err
		}
		s.records[i] = merged
		return merged, nil
	}
	return domain.School{}, ErrNotFound
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

// List retrieves Schools matching the filter, preserving insertion order.
// PRE: filter has valid parameters
// POST: Returns a new slice
func (s *MemoryStore) List(ctx context.Context, filter ListFilter) ([]domain.School, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []domain.School
	skipped := 0
	for _, rec := range s.records {
		if !matches(rec, filter) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		results = append(results, rec)
		if filter.Limit > 0 && len(results) >= filter.Limit {
			break
		}
	}
	return results, nil
}

// Count returns the number of Schools matching the filter, ignoring
// Limit and Offset.
// PRE: filter has valid parameters
// POST: Returns count >= 0
func (s *MemoryStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, rec := range s.records {
		if matches(rec, filter) {
			count++
		}
	}
	return count, nil
}

func matches(rec domain.School, filter ListFilter) bool {
	if filter.Type != "" && !strings.EqualFold(rec.Type, filter.Type) {
		return false
	}
	if filter.Search != "" && !searchMatch(rec.SearchFields(), filter.Search) {
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

func applyPatch(rec domain.School, p Patch) domain.School {
	if p.Name != nil {
		rec.Name = *p.Name
	}
	if p.City != nil {
		rec.City = *p.City
	}
	if p.State != nil {
		rec.State = *p.State
	}
	if p.Type != nil {
		rec.Type = *p.Type
	}
	return rec
}
