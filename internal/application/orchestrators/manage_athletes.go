package orchestrators

import (
	"context"
	"log/slog"

	athleteStore "motive/internal/adapters/storage/athlete"
	domain "motive/internal/domain/athlete"
)

// AthleteStoreForManage defines the store interface needed by the athlete
// write paths.
type AthleteStoreForManage interface {
	Add(ctx context.Context, a domain.Athlete) (domain.Athlete, error)
	Update(ctx context.Context, id string, patch athleteStore.Patch) (domain.Athlete, error)
	Delete(ctx context.Context, id string) error
}

// AddAthleteInput carries the fields of a new athlete record. The ID is
// always assigned by the store.
type AddAthleteInput struct {
	Name   string
	Age    int
	Grade  int
	Email  string
	Phone  string
	Sport  string
	Team   string
	School string
}

// ManageAthletesDeps holds dependencies for the athlete write paths.
type ManageAthletesDeps struct {
	AthleteStore AthleteStoreForManage
}

// ExecuteAddAthlete validates and stores a new athlete.
// PRE: input carries user-submitted field values
// POST: Athlete is appended to the roster with a store-assigned ID
func ExecuteAddAthlete(ctx context.Context, input AddAthleteInput, deps ManageAthletesDeps) (domain.Athlete, error) {
	a := domain.Athlete{
		Name:   input.Name,
		Age:    input.Age,
		Grade:  input.Grade,
		Email:  input.Email,
		Phone:  input.Phone,
		Sport:  input.Sport,
		Team:   input.Team,
		School: input.School,
	}
	if err := a.Validate(); err != nil {
		return domain.Athlete{}, err
	}
	added, err := deps.AthleteStore.Add(ctx, a)
	if err != nil {
		return domain.Athlete{}, err
	}
	slog.Info("roster_event", "event", "athlete_added", "id", added.ID, "name", added.Name)
	return added, nil
}

// ExecuteUpdateAthlete applies a patch to an existing athlete.
// PRE: id is non-empty
// POST: Matching athlete is updated; athleteStore.ErrNotFound if absent
func ExecuteUpdateAthlete(ctx context.Context, id string, patch athleteStore.Patch, deps ManageAthletesDeps) (domain.Athlete, error) {
	updated, err := deps.AthleteStore.Update(ctx, id, patch)
	if err != nil {
		return domain.Athlete{}, err
	}
	slog.Info("roster_event", "event", "athlete_updated", "id", id)
	return updated, nil
}

// ExecuteDeleteAthlete removes an athlete. Destructive-intent confirmation
// is the view layer's responsibility.
// PRE: id is non-empty
// POST: Athlete is removed; athleteStore.ErrNotFound if absent
func ExecuteDeleteAthlete(ctx context.Context, id string, deps ManageAthletesDeps) error {
	if err := deps.AthleteStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("roster_event", "event", "athlete_deleted", "id", id)
	return nil
}
