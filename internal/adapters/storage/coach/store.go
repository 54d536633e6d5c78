package coach

import (
	"context"
	"errors"

	domain "motive/internal/domain/coach"
)

// ErrNotFound is returned by Update/Delete/GetByID when no record matches.
var ErrNotFound = errors.New("coach not found")

// Store persists Coach state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Coach, error)
	Add(ctx context.Context, value domain.Coach) (domain.Coach, error)
	Update(ctx context.Context, id string, patch Patch) (domain.Coach, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Coach, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// ListFilter carries filtering parameters for List/Count operations.
// Search matches name, team, specialization and school. School and
// Specialization are case-insensitive exact matches; Team is exact.
type ListFilter struct {
	Search         string
	School         string
	Specialization string
	Team           string
	Limit          int // <= 0 means no limit
	Offset         int
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Name           *string
	Email          *string
	Phone          *string
	Team           *string
	School         *string
	Specialization *string
	Experience     *string
	ProfilePicture *string
	Achievements   *[]string
}
