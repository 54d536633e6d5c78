package orchestrators

import (
	"context"
	"log/slog"

	coachStore "motive/internal/adapters/storage/coach"
	domain "motive/internal/domain/coach"
)

// CoachStoreForManage defines the store interface needed by the coach
// write paths.
type CoachStoreForManage interface {
	Add(ctx context.Context, c domain.Coach) (domain.Coach, error)
	Update(ctx context.Context, id string, patch coachStore.Patch) (domain.Coach, error)
	Delete(ctx context.Context, id string) error
}

// AddCoachInput carries the fields of a new coach record.
type AddCoachInput struct {
	Name           string
	Email          string
	Phone          string
	Team           string
	School         string
	Specialization string
	Experience     string
}

// ManageCoachesDeps holds dependencies for the coach write paths.
type ManageCoachesDeps struct {
	CoachStore CoachStoreForManage
}

// ExecuteAddCoach validates and stores a new coach.
// PRE: input carries user-submitted field values
// POST: Coach is appended to the roster with a store-assigned ID
func ExecuteAddCoach(ctx context.Context, input AddCoachInput, deps ManageCoachesDeps) (domain.Coach, error) {
	c := domain.Coach{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Team:           input.Team,
		School:         input.School,
		Specialization: input.Specialization,
		Experience:     input.Experience,
	}
	if err := c.Validate(); err != nil {
		return domain.Coach{}, err
	}
	added, err := deps.CoachStore.Add(ctx, c)
	if err != nil {
		return domain.Coach{}, err
	}
	slog.Info("roster_event", "event", "coach_added", "id", added.ID, "name", added.Name)
	return added, nil
}

// ExecuteUpdateCoach applies a patch to an existing coach.
// PRE: id is non-empty
// POST: Matching coach is updated; coachStore.ErrNotFound if absent
func ExecuteUpdateCoach(ctx context.Context, id string, patch coachStore.Patch, deps ManageCoachesDeps) (domain.Coach, error) {
	updated, err := deps.CoachStore.Update(ctx, id, patch)
	if err != nil {
		return domain.Coach{}, err
	}
	slog.Info("roster_event", "event", "coach_updated", "id", id)
	return updated, nil
}

// ExecuteDeleteCoach removes a coach.
// PRE: id is non-empty
// POST: Coach is removed; coachStore.ErrNotFound if absent
func ExecuteDeleteCoach(ctx context.Context, id string, deps ManageCoachesDeps) error {
	if err := deps.CoachStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("roster_event", "event", "coach_deleted", "id", id)
	return nil
}
