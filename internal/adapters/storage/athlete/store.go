package athlete

import (
	"context"
	"errors"

	domain "motive/internal/domain/athlete"
)

// ErrNotFound is returned by Update/Delete/GetByID when no record matches.
var ErrNotFound = errors.New("athlete not found")

// Store persists Athlete state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Athlete, error)
	Add(ctx context.Context, value domain.Athlete) (domain.Athlete, error)
	Update(ctx context.Context, id string, patch Patch) (domain.Athlete, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Athlete, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// ListFilter carries filtering parameters for List/Count operations.
// Search is a case-insensitive substring match over name, team, sport and
// school. School and Sport are case-insensitive exact matches. Team is an
// exact (case-sensitive) match; it backs team membership lookups and the
// team-rename cascade. Empty fields match everything.
type ListFilter struct {
	Search string
	School string
	Sport  string
	Team   string
	Limit  int // <= 0 means no limit
	Offset int
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Name           *string
	Age            *int
	Grade          *int
	Email          *string
	Phone          *string
	Sport          *string
	Team           *string
	School         *string
	ProfilePicture *string
	Performance    *domain.Performance
}
