package projections

import (
	"context"

	"motive/internal/adapters/storage/coach"
	"motive/internal/application/listutil"
	domainCoach "motive/internal/domain/coach"
)

// GetCoachListQuery carries query parameters.
type GetCoachListQuery struct {
	Search         string
	School         string
	Specialization string
	Team           string
	Page           int
	Limit          int // listutil.LimitAll means unlimited
}

// GetCoachListResult carries the query result.
type GetCoachListResult struct {
	Coaches []domainCoach.Coach
	Page    listutil.PageInfo
}

// GetCoachListDeps holds dependencies for GetCoachList.
type GetCoachListDeps struct {
	CoachStore CoachStore
}

// QueryGetCoachList retrieves a filtered, paged coach list.
// PRE: Valid query parameters
// POST: Returns coaches matching the filters, in roster order
func QueryGetCoachList(ctx context.Context, query GetCoachListQuery, deps GetCoachListDeps) (GetCoachListResult, error) {
	filter := coach.ListFilter{
		Search:         query.Search,
		School:         query.School,
		Specialization: query.Specialization,
		Team:           query.Team,
	}

	total, err := deps.CoachStore.Count(ctx, filter)
	if err != nil {
		return GetCoachListResult{}, err
	}

	page := listutil.NewPageInfo(query.Page, query.Limit, total)
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	coaches, err := deps.CoachStore.List(ctx, filter)
	if err != nil {
		return GetCoachListResult{}, err
	}

	return GetCoachListResult{Coaches: coaches, Page: page}, nil
}
