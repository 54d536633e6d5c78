package orchestrators

import (
	"context"
	"log/slog"

	athleteStore "motive/internal/adapters/storage/athlete"
	coachStore "motive/internal/adapters/storage/coach"
	teamStore "motive/internal/adapters/storage/team"
	domainAthlete "motive/internal/domain/athlete"
	domainCoach "motive/internal/domain/coach"
	domain "motive/internal/domain/team"
)

// TeamStoreForManage defines the store interface needed by the team write
// paths.
type TeamStoreForManage interface {
	GetByID(ctx context.Context, id string) (domain.Team, error)
	Add(ctx context.Context, t domain.Team) (domain.Team, error)
	Update(ctx context.Context, id string, patch teamStore.Patch) (domain.Team, error)
	Delete(ctx context.Context, id string) error
}

// AthleteStoreForCascade is the slice of the athlete store the rename
// cascade needs.
type AthleteStoreForCascade interface {
	List(ctx context.Context, filter athleteStore.ListFilter) ([]domainAthlete.Athlete, error)
	Update(ctx context.Context, id string, patch athleteStore.Patch) (domainAthlete.Athlete, error)
}

// CoachStoreForCascade is the slice of the coach store the rename cascade
// needs.
type CoachStoreForCascade interface {
	List(ctx context.Context, filter coachStore.ListFilter) ([]domainCoach.Coach, error)
	Update(ctx context.Context, id string, patch coachStore.Patch) (domainCoach.Coach, error)
}

// AddTeamInput carries the fields of a new team record.
type AddTeamInput struct {
	Name   string
	Sport  string
	School string
	Coach  string
}

// ManageTeamsDeps holds dependencies for the team write paths.
type ManageTeamsDeps struct {
	TeamStore    TeamStoreForManage
	AthleteStore AthleteStoreForCascade
	CoachStore   CoachStoreForCascade
}

// ExecuteAddTeam validates and stores a new team.
// PRE: input carries user-submitted field values
// POST: Team is appended to the roster with a store-assigned ID
func ExecuteAddTeam(ctx context.Context, input AddTeamInput, deps ManageTeamsDeps) (domain.Team, error) {
	t := domain.Team{
		Name:   input.Name,
		Sport:  input.Sport,
		School: input.School,
		Coach:  input.Coach,
	}
	if err := t.Validate(); err != nil {
		return domain.Team{}, err
	}
	added, err := deps.TeamStore.Add(ctx, t)
	if err != nil {
		return domain.Team{}, err
	}
	slog.Info("roster_event", "event", "team_added", "id", added.ID, "name", added.Name)
	return added, nil
}

// ExecuteUpdateTeam applies a patch to an existing team. When the patch
// renames the team, the new name is cascaded into every athlete and coach
// whose team field carried the old name. People referencing a different
// team are untouched. The cascade lives here, not in the stores: display
// names are the cross-kind link, and only this path knows a rename
// happened.
// PRE: id is non-empty
// POST: Team is updated; members' team fields follow a rename
func ExecuteUpdateTeam(ctx context.Context, id string, patch teamStore.Patch, deps ManageTeamsDeps) (domain.Team, error) {
	before, err := deps.TeamStore.GetByID(ctx, id)
	if err != nil {
		return domain.Team{}, err
	}

	updated, err := deps.TeamStore.Update(ctx, id, patch)
	if err != nil {
		return domain.Team{}, err
	}

	if patch.Name != nil && *patch.Name != before.Name {
		if err := cascadeTeamRename(ctx, deps, before.Name, updated.Name); err != nil {
			return domain.Team{}, err
		}
	}

	slog.Info("roster_event", "event", "team_updated", "id", id)
	return updated, nil
}

// ExecuteDeleteTeam removes a team. Athletes and coaches keep their team
// field; the roster tolerates dangling display names by design.
// PRE: id is non-empty
// POST: Team is removed; teamStore.ErrNotFound if absent
func ExecuteDeleteTeam(ctx context.Context, id string, deps ManageTeamsDeps) error {
	if err := deps.TeamStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("roster_event", "event", "team_deleted", "id", id)
	return nil
}

func cascadeTeamRename(ctx context.Context, deps ManageTeamsDeps, oldName, newName string) error {
	athletes, err := deps.AthleteStore.List(ctx, athleteStore.ListFilter{Team: oldName})
	if err != nil {
		return err
	}
	for _, a := range athletes {
		if _, err := deps.AthleteStore.Update(ctx, a.ID, athleteStore.Patch{Team: &newName}); err != nil {
			return err
		}
	}

	coaches, err := deps.CoachStore.List(ctx, coachStore.ListFilter{Team: oldName})
	if err != nil {
		return err
	}
	for _, c := range coaches {
		if _, err := deps.CoachStore.Update(ctx, c.ID, coachStore.Patch{Team: &newName}); err != nil {
			return err
		}
	}

	slog.Info("roster_event", "event", "team_renamed",
		"from", oldName, "to", newName,
		"athletes", len(athletes), "coaches", len(coaches))
	return nil
}
