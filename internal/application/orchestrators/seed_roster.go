package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	schoolStore "motive/internal/adapters/storage/school"
	"motive/internal/application/generator"
	domainAthlete "motive/internal/domain/athlete"
	domainCoach "motive/internal/domain/coach"
	domainSchool "motive/internal/domain/school"
	domainTeam "motive/internal/domain/team"
)

// SeedRosterDeps holds the stores the roster seed writes into.
type SeedRosterDeps struct {
	SchoolStore  seedSchoolStore
	TeamStore    seedTeamStore
	AthleteStore seedAthleteStore
	CoachStore   seedCoachStore
}

type seedSchoolStore interface {
	Add(ctx context.Context, s domainSchool.School) (domainSchool.School, error)
	Count(ctx context.Context, filter schoolStore.ListFilter) (int, error)
}
type seedTeamStore interface {
	Add(ctx context.Context, t domainTeam.Team) (domainTeam.Team, error)
}
type seedAthleteStore interface {
	Add(ctx context.Context, a domainAthlete.Athlete) (domainAthlete.Athlete, error)
}
type seedCoachStore interface {
	Add(ctx context.Context, c domainCoach.Coach) (domainCoach.Coach, error)
}

// ExecuteSeedRoster populates the roster stores from a freshly generated
// hierarchy. Records are added in flattened hierarchy order, so list views
// start out grouped by school and team. Skips when schools already exist,
// which makes a second call within one process a no-op; a restart always
// reseeds because the stores are memory-only.
// PRE: deps stores are non-nil
// POST: Stores hold one record per generated school, team, athlete and coach
func ExecuteSeedRoster(ctx context.Context, deps SeedRosterDeps, gen *generator.Generator) error {
	existing, err := deps.SchoolStore.Count(ctx, schoolStore.ListFilter{})
	if err != nil {
		return fmt.Errorf("seed_roster: count schools: %w", err)
	}
	if existing > 0 {
		slog.Info("seed_event", "event", "roster_skip", "reason", "already_seeded")
		return nil
	}

	h := gen.Generate()

	for _, s := range h.AllSchools() {
		if _, err := deps.SchoolStore.Add(ctx, s); err != nil {
			return fmt.Errorf("seed_roster: add school %q: %w", s.Name, err)
		}
	}
	for _, t := range h.AllTeams() {
		if _, err := deps.TeamStore.Add(ctx, t); err != nil {
			return fmt.Errorf("seed_roster: add team %q: %w", t.Name, err)
		}
	}
	for _, a := range h.AllAthletes() {
		if _, err := deps.AthleteStore.Add(ctx, a); err != nil {
			return fmt.Errorf("seed_roster: add athlete %q: %w", a.Name, err)
		}
	}
	for _, c := range h.AllCoaches() {
		if _, err := deps.CoachStore.Add(ctx, c); err != nil {
			return fmt.Errorf("seed_roster: add coach %q: %w", c.Name, err)
		}
	}

	slog.Info("seed_event", "event", "roster_seeded",
		"schools", len(h.Schools),
		"teams", len(h.AllTeams()),
		"athletes", len(h.AllAthletes()),
		"coaches", len(h.AllCoaches()),
	)
	return nil
}
