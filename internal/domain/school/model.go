package school

import (
	"errors"
	"strings"
)

// School type constants
const (
	TypePublic  = "Public"
	TypePrivate = "Private"
)

// Domain errors
var (
	ErrEmptyName   = errors.New("school name cannot be empty")
	ErrInvalidType = errors.New("school type must be 'Public' or 'Private'")
)

// School holds state for the School concept. City and State are stored
// separately; Location renders the combined display form.
type School struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
	Type  string `json:"type,omitempty"`
}

// Location returns the "City, ST" display form used in roster views.
// INVARIANT: School fields are not mutated
func (s *School) Location() string {
	if s.City == "" {
		return s.State
	}
	if s.State == "" {
		return s.City
	}
	return s.City + ", " + s.State
}

// Validate checks if the School has valid data.
// PRE: School struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (s *School) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if s.Type != "" && s.Type != TypePublic && s.Type != TypePrivate {
		return ErrInvalidType
	}
	return nil
}

// SearchFields returns the values matched by free-text roster search.
// INVARIANT: School fields are not mutated
func (s *School) SearchFields() []string {
	return []string{s.Name, s.City, s.State}
}
