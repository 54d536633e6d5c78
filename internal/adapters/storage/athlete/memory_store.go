package athlete

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	domain "motive/internal/domain/athlete"
)

// MemoryStore implements Store over an ordered in-memory collection.
// Roster data is transient: it is seeded at startup and edits do not
// survive a restart. Insertion order is preserved; updates keep a record's
// position and adds append to the end.
type MemoryStore struct {
	mu      sync.RWMutex
	records []domain.Athlete
}

// NewMemoryStore creates an empty athlete store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GetByID retrieves an Athlete by its ID.
// PRE: id is non-empty
// POST: Returns the record or ErrNotFound
func (s *MemoryStore) GetByID(ctx context.Context, id string) (domain.Athlete, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.records {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Athlete{}, ErrNotFound
}

// Add appends an Athlete to the collection, assigning an ID when absent.
// ID assignment is centralized here so callers never invent colliding IDs.
// PRE: value has been validated
// POST: Record is appended; the stored record (with ID) is returned
func (s *MemoryStore) Add(ctx context.Context, value domain.Athlete) (domain.Athlete, error) {
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
func (s *MemoryStore) Update(ctx context.Context, id string, patch Patch) (domain.Athlete, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		merged := applyPatch(s.records[i], patch)
		if err := merged.Validate(); err != nil {
			return domain.Athlete{}, err
		}
		s.records[i] = merged
		return merged, nil
	}
	return domain.Athlete{}, ErrNotFound
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

// List retrieves Athletes matching the filter, preserving insertion order.
// PRE: filter has valid parameters
// POST: Returns a new slice; the store's backing array is never exposed
func (s *MemoryStore) List(ctx context.Context, filter ListFilter) ([]domain.Athlete, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []domain.Athlete
	skipped := 0
	for _, a := range s.records {
		if !matches(a, filter) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		results = append(results, a)
		if filter.Limit > 0 && len(results) >= filter.Limit {
			break
		}
	}
	return results, nil
}

// Count returns the number of Athletes matching the filter, ignoring
// Limit and Offset.
// PRE: filter has valid parameters
// POST: Returns count >= 0
func (s *MemoryStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, a := range s.records {
		if matches(a, filter) {
			count++
		}
	}
	return count, nil
}

// matches applies the filter dimensions, AND-combined. An empty search or
// filter value matches everything; empty record fields never match a
// non-empty query but never error.
func matches(a domain.Athlete, filter ListFilter) bool {
	if filter.School != "" && !strings.EqualFold(a.School, filter.School) {
		return false
	}
	if filter.Sport != "" && !strings.EqualFold(a.Sport, filter.Sport) {
		return false
	}
	if filter.Team != "" && a.Team != filter.Team {
		return false
	}
	if filter.Search != "" && !searchMatch(a.SearchFields(), filter.Search) {
		return false
	}
	return true
}

// searchMatch reports whether any field contains the query, case-insensitively.
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

// applyPatch shallow-merges a patch over an existing record.
func applyPatch(a domain.Athlete, p Patch) domain.Athlete {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Age != nil {
		a.Age = *p.Age
	}
	if p.Grade != nil {
		a.Grade = *p.Grade
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
	if p.Sport != nil {
		a.Sport = *p.Sport
	}
	if p.Team != nil {
		a.Team = *p.Team
	}
	if p.School != nil {
		a.School = *p.School
	}
	if p.ProfilePicture != nil {
		a.ProfilePicture = *p.ProfilePicture
	}
	if p.Performance != nil {
		a.Performance = *p.Performance
	}
	return a
}
