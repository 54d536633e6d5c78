package projections

import (
	"context"

	"motive/internal/adapters/storage/athlete"
	"motive/internal/application/listutil"
	domainAthlete "motive/internal/domain/athlete"
)

// GetAthleteListQuery carries query parameters.
type GetAthleteListQuery struct {
	Search string
	School string
	Sport  string
	Team   string
	Page   int
	Limit  int // listutil.LimitAll means unlimited
}

// GetAthleteListResult carries the query result.
type GetAthleteListResult struct {
	Athletes []domainAthlete.Athlete
	Page     listutil.PageInfo
}

// GetAthleteListDeps holds dependencies for GetAthleteList.
type GetAthleteListDeps struct {
	AthleteStore AthleteStore
}

// QueryGetAthleteList retrieves a filtered, paged athlete list. The page
// number is clamped into range before the window is taken, so a stale page
// from a previous, larger result set still renders the last page rather
// than an empty one.
// PRE: Valid query parameters
// POST: Returns athletes matching the filters, in roster order
func QueryGetAthleteList(ctx context.Context, query GetAthleteListQuery, deps GetAthleteListDeps) (GetAthleteListResult, error) {
	filter := athlete.ListFilter{
		Search: query.Search,
		School: query.School,
		Sport:  query.Sport,
		Team:   query.Team,
	}

	total, err := deps.AthleteStore.Count(ctx, filter)
	if err != nil {
		return GetAthleteListResult{}, err
	}

	page := listutil.NewPageInfo(query.Page, query.Limit, total)
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	athletes, err := deps.AthleteStore.List(ctx, filter)
	if err != nil {
		return GetAthleteListResult{}, err
	}

	return GetAthleteListResult{Athletes: athletes, Page: page}, nil
}
