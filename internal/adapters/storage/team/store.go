package team

import (
	"context"
	"errors"

	domain "motive/internal/domain/team"
)

// ErrNotFound is returned by Update/Delete/GetByID when no record matches.
var ErrNotFound = errors.New("team not found")

// Store persists Team state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Team, error)
	GetByName(ctx context.Context, name string) (domain.Team, error)
	Add(ctx context.Context, value domain.Team) (domain.Team, error)
	Update(ctx context.Context, id string, patch Patch) (domain.Team, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Team, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// ListFilter carries filtering parameters for List/Count operations.
// Search matches name, coach and school. School and Sport are
// case-insensitive exact matches.
type ListFilter struct {
	Search string
	School string
	Sport  string
	Limit  int // <= 0 means no limit
	Offset int
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Name   *string
	Sport  *string
	School *string
	Coach  *string
}
