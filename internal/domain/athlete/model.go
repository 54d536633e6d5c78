package athlete

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// Age and grade bounds for high-school athletes.
const (
	MinAge   = 10
	MaxAge   = 25
	MinGrade = 9
	MaxGrade = 12
)

// Domain errors
var (
	ErrEmptyName    = errors.New("athlete name cannot be empty")
	ErrInvalidEmail = errors.New("athlete email must be valid")
	ErrInvalidAge   = errors.New("athlete age is out of range")
	ErrInvalidGrade = errors.New("athlete grade must be between 9 and 12")
)

// Performance holds the named numeric scores tracked per athlete.
// Strength/Speed/Endurance/Agility are 0-100, Attendance is a percentage,
// RecentProgress may be negative.
type Performance struct {
	Strength       int `json:"strength"`
	Speed          int `json:"speed"`
	Endurance      int `json:"endurance"`
	Agility        int `json:"agility"`
	Attendance     int `json:"attendance"`
	RecentProgress int `json:"recentProgress"`
}

// Athlete holds state for the Athlete concept. Team and School carry the
// display names of the owning team and school; they are kept consistent by
// the seed generator and by the team-rename orchestrator, not by the store.
type Athlete struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Age            int         `json:"age"`
	Grade          int         `json:"grade,omitempty"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone,omitempty"`
	Sport          string      `json:"sport"`
	Team           string      `json:"team"`
	School         string      `json:"school"`
	ProfilePicture string      `json:"profilePicture,omitempty"`
	Performance    Performance `json:"performance"`
}

// Validate checks if the Athlete has valid data.
// PRE: Athlete struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Email must contain '@' when set, Name must not be empty
func (a *Athlete) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if len(a.Name) > MaxNameLength {
		return errors.New("athlete name cannot exceed 100 characters")
	}
	if a.Email != "" && !strings.Contains(a.Email, "@") {
		return ErrInvalidEmail
	}
	if a.Age != 0 && (a.Age < MinAge || a.Age > MaxAge) {
		return ErrInvalidAge
	}
	if a.Grade != 0 && (a.Grade < MinGrade || a.Grade > MaxGrade) {
		return ErrInvalidGrade
	}
	return nil
}

// SearchFields returns the values matched by free-text roster search.
// INVARIANT: Athlete fields are not mutated
func (a *Athlete) SearchFields() []string {
	return []string{a.Name, a.Team, a.Sport, a.School}
}
