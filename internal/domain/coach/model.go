package coach

import (
	"errors"
	"fmt"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Domain errors
var (
	ErrEmptyName    = errors.New("coach name cannot be empty")
	ErrInvalidEmail = errors.New("coach email must be valid")
)

// Coach holds state for the Coach concept. Experience is a display string
// such as "12 years", matching what the roster UI renders directly.
type Coach struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	Team           string   `json:"team"`
	School         string   `json:"school"`
	Specialization string   `json:"specialization"`
	Experience     string   `json:"experience"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	Achievements   []string `json:"achievements,omitempty"`
}

// FormatExperience renders a year count the way coach records store it.
func FormatExperience(years int) string {
	return fmt.Sprintf("%d years", years)
}

// Validate checks if the Coach has valid data.
// PRE: Coach struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (c *Coach) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Name) > MaxNameLength {
		return errors.New("coach name cannot exceed 100 characters")
	}
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// SearchFields returns the values matched by free-text roster search.
// INVARIANT: Coach fields are not mutated
func (c *Coach) SearchFields() []string {
	return []string{c.Name, c.Team, c.Specialization, c.School}
}
