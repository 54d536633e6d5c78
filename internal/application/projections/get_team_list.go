package projections

import (
	"context"

	"motive/internal/adapters/storage/athlete"
	"motive/internal/adapters/storage/team"
	"motive/internal/application/listutil"
	domainTeam "motive/internal/domain/team"
)

// GetTeamListQuery carries query parameters.
type GetTeamListQuery struct {
	Search string
	School string
	Sport  string
	Page   int
	Limit  int // listutil.LimitAll means unlimited
}

// TeamWithSize represents a team with its derived roster size.
type TeamWithSize struct {
	domainTeam.Team
	AthleteCount int `json:"athleteCount"`
}

// GetTeamListResult carries the query result.
type GetTeamListResult struct {
	Teams []TeamWithSize
	Page  listutil.PageInfo
}

// GetTeamListDeps holds dependencies for GetTeamList.
type GetTeamListDeps struct {
	TeamStore    TeamStore
	AthleteStore AthleteStore
}

// QueryGetTeamList retrieves a filtered, paged team list with athlete
// counts. Counts are derived from the athlete records' team field, so a
// team whose members were all reassigned shows zero rather than a stale
// membership.
// PRE: Valid query parameters
// POST: Returns teams matching the filters, in roster order
func QueryGetTeamList(ctx context.Context, query GetTeamListQuery, deps GetTeamListDeps) (GetTeamListResult, error) {
	filter := team.ListFilter{
		Search: query.Search,
		School: query.School,
		Sport:  query.Sport,
	}

	total, err := deps.TeamStore.Count(ctx, filter)
	if err != nil {
		return GetTeamListResult{}, err
	}

	page := listutil.NewPageInfo(query.Page, query.Limit, total)
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	teams, err := deps.TeamStore.List(ctx, filter)
	if err != nil {
		return GetTeamListResult{}, err
	}

	// One pass over athletes instead of a Count per team.
	athletes, err := deps.AthleteStore.List(ctx, athlete.ListFilter{})
	if err != nil {
		return GetTeamListResult{}, err
	}
	sizeByTeam := make(map[string]int)
	for _, a := range athletes {
		sizeByTeam[a.Team]++
	}

	result := make([]TeamWithSize, 0, len(teams))
	for _, t := range teams {
		result = append(result, TeamWithSize{
			Team:         t,
			AthleteCount: sizeByTeam[t.Name],
		})
	}

	return GetTeamListResult{Teams: result, Page: page}, nil
}
