package school

import (
	"context"
	"errors"

	domain "motive/internal/domain/school"
)

// ErrNotFound is returned by Update/Delete/GetByID when no record matches.
var ErrNotFound = errors.New("school not found")

// Store persists School state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.School, error)
	GetByName(ctx context.Context, name string) (domain.School, error)
	Add(ctx context.Context, value domain.School) (domain.School, error)
	Update(ctx context.Context, id string, patch Patch) (domain.School, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.School, error)
	Count(ctx context.Context, filter ListFilter) (int, error)
}

// ListFilter carries filtering parameters for List/Count operations.
// Search matches name, city and state. Type is a case-insensitive exact
// match ("Public" / "Private").
type ListFilter struct {
	Search string
	Type   string
	Limit  int // <= 0 means no limit
	Offset int
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Name  *string
	City  *string
	State *string
	Type  *string
}
