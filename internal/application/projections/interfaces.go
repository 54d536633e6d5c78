package projections

import (
	"context"

	"motive/internal/adapters/storage/athlete"
	"motive/internal/adapters/storage/coach"
	"motive/internal/adapters/storage/school"
	"motive/internal/adapters/storage/team"
	domainAthlete "motive/internal/domain/athlete"
	domainCoach "motive/internal/domain/coach"
	domainSchool "motive/internal/domain/school"
	domainTeam "motive/internal/domain/team"
)

// AthleteStore interface for athlete queries.
type AthleteStore interface {
	GetByID(ctx context.Context, id string) (domainAthlete.Athlete, error)
	List(ctx context.Context, filter athlete.ListFilter) ([]domainAthlete.Athlete, error)
	Count(ctx context.Context, filter athlete.ListFilter) (int, error)
}

// CoachStore interface for coach queries.
type CoachStore interface {
	GetByID(ctx context.Context, id string) (domainCoach.Coach, error)
	List(ctx context.Context, filter coach.ListFilter) ([]domainCoach.Coach, error)
	Count(ctx context.Context, filter coach.ListFilter) (int, error)
}

// TeamStore interface for team queries.
type TeamStore interface {
	GetByID(ctx context.Context, id string) (domainTeam.Team, error)
	List(ctx context.Context, filter team.ListFilter) ([]domainTeam.Team, error)
	Count(ctx context.Context, filter team.ListFilter) (int, error)
}

// SchoolStore interface for school queries.
type SchoolStore interface {
	GetByID(ctx context.Context, id string) (domainSchool.School, error)
	List(ctx context.Context, filter school.ListFilter) ([]domainSchool.School, error)
	Count(ctx context.Context, filter school.ListFilter) (int, error)
}
