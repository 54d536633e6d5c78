package team

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 120
)

// Domain errors
var (
	ErrEmptyName  = errors.New("team name cannot be empty")
	ErrEmptySport = errors.New("team sport cannot be empty")
)

// Team holds state for the Team concept. School and Coach are display names;
// athlete membership is tracked on the athlete records themselves.
type Team struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Sport  string `json:"sport"`
	School string `json:"school"`
	Coach  string `json:"coach,omitempty"`
}

// Validate checks if the Team has valid data.
// PRE: Team struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (t *Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if len(t.Name) > MaxNameLength {
		return errors.New("team name cannot exceed 120 characters")
	}
	if strings.TrimSpace(t.Sport) == "" {
		return ErrEmptySport
	}
	return nil
}

// SearchFields returns the values matched by free-text roster search.
// INVARIANT: Team fields are not mutated
func (t *Team) SearchFields() []string {
	return []string{t.Name, t.Coach, t.School}
}
