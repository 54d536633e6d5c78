package projections

import (
	"context"

	"motive/internal/adapters/storage/athlete"
	"motive/internal/adapters/storage/coach"
	"motive/internal/adapters/storage/school"
	"motive/internal/adapters/storage/team"
)

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	AthleteStore AthleteStore
	CoachStore   CoachStore
	TeamStore    TeamStore
	SchoolStore  SchoolStore
}

// SportSummary carries the number of teams fielded for one sport.
type SportSummary struct {
	Sport string `json:"sport"`
	Teams int    `json:"teams"`
}

// DashboardResult carries the output of the dashboard projection.
type DashboardResult struct {
	AthleteCount int `json:"athleteCount"`
	CoachCount   int `json:"coachCount"`
	TeamCount    int `json:"teamCount"`
	SchoolCount  int `json:"schoolCount"`

	// Teams per sport, ordered by first appearance in the roster.
	Sports []SportSummary `json:"sports"`

	// Averages across all athletes with performance data; zero when the
	// roster is empty.
	AvgStrength   float64 `json:"avgStrength"`
	AvgSpeed      float64 `json:"avgSpeed"`
	AvgEndurance  float64 `json:"avgEndurance"`
	AvgAgility    float64 `json:"avgAgility"`
	AvgAttendance float64 `json:"avgAttendance"`
}

// QueryGetDashboard aggregates roster-wide counts and performance averages
// for the admin landing page.
// PRE: All stores are non-nil
// POST: Returns entity totals, per-sport team counts and athlete averages
func QueryGetDashboard(ctx context.Context, deps GetDashboardDeps) (DashboardResult, error) {
	var result DashboardResult

	var err error
	if result.CoachCount, err = deps.CoachStore.Count(ctx, coach.ListFilter{}); err != nil {
		return DashboardResult{}, err
	}
	if result.SchoolCount, err = deps.SchoolStore.Count(ctx, school.ListFilter{}); err != nil {
		return DashboardResult{}, err
	}

	teams, err := deps.TeamStore.List(ctx, team.ListFilter{})
	if err != nil {
		return DashboardResult{}, err
	}
	result.TeamCount = len(teams)

	// Group teams by sport, preserving roster order of first appearance.
	indexBySport := make(map[string]int)
	for _, t := range teams {
		if idx, ok := indexBySport[t.Sport]; ok {
			result.Sports[idx].Teams++
			continue
		}
		indexBySport[t.Sport] = len(result.Sports)
		result.Sports = append(result.Sports, SportSummary{Sport: t.Sport, Teams: 1})
	}

	athletes, err := deps.AthleteStore.List(ctx, athlete.ListFilter{})
	if err != nil {
		return DashboardResult{}, err
	}
	result.AthleteCount = len(athletes)

	if len(athletes) > 0 {
		var strength, speed, endurance, agility, attendance int
		for _, a := range athletes {
			strength += a.Performance.Strength
			speed += a.Performance.Speed
			endurance += a.Performance.Endurance
			agility += a.Performance.Agility
			attendance += a.Performance.Attendance
		}
		n := float64(len(athletes))
		result.AvgStrength = float64(strength) / n
		result.AvgSpeed = float64(speed) / n
		result.AvgEndurance = float64(endurance) / n
		result.AvgAgility = float64(agility) / n
		result.AvgAttendance = float64(attendance) / n
	}

	return result, nil
}
