package orchestrators

import (
	"context"
	"log/slog"

	schoolStore "motive/internal/adapters/storage/school"
	domain "motive/internal/domain/school"
)

// SchoolStoreForManage defines the store interface needed by the school
// write paths.
type SchoolStoreForManage interface {
	Add(ctx context.Context, s domain.School) (domain.School, error)
	Update(ctx context.Context, id string, patch schoolStore.Patch) (domain.School, error)
	Delete(ctx context.Context, id string) error
}

// AddSchoolInput carries the fields of a new school record.
type AddSchoolInput struct {
	Name  string
	City  string
	State string
	Type  string
}

// ExecuteAddSchool validates and stores a new school.
// PRE: input carries user-submitted field values
// POST: School is appended to the roster with a store-assigned ID
func ExecuteAddSchool(ctx context.Context, input AddSchoolInput, store SchoolStoreForManage) (domain.School, error) {
	s := domain.School{
		Name:  input.Name,
		City:  input.City,
		State: input.State,
		Type:  input.Type,
	}
	if err := s.Validate(); err != nil {
		return domain.School{}, err
	}
	added, err := store.Add(ctx, s)
	if err != nil {
		return domain.School{}, err
	}
	slog.Info("roster_event", "event", "school_added", "id", added.ID, "name", added.Name)
	return added, nil
}

// ExecuteUpdateSchool applies a patch to an existing school. Renaming a
// school does not cascade: teams and people keep whatever school name they
// were entered with.
// PRE: id is non-empty
// POST: School is updated; schoolStore.ErrNotFound if absent
func ExecuteUpdateSchool(ctx context.Context, id string, patch schoolStore.Patch, store SchoolStoreForManage) (domain.School, error) {
	updated, err := store.Update(ctx, id, patch)
	if err != nil {
		return domain.School{}, err
	}
	slog.Info("roster_event", "event", "school_updated", "id", id)
	return updated, nil
}

// ExecuteDeleteSchool removes a school.
// PRE: id is non-empty
// POST: School is removed; schoolStore.ErrNotFound if absent
func ExecuteDeleteSchool(ctx context.Context, id string, store SchoolStoreForManage) error {
	if err := store.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("roster_event", "event", "school_deleted", "id", id)
	return nil
}
