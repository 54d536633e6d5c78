package projections

import (
	"context"

	"motive/internal/adapters/storage/school"
	"motive/internal/adapters/storage/team"
	"motive/internal/application/listutil"
	domainSchool "motive/internal/domain/school"
)

// GetSchoolListQuery carries query parameters.
type GetSchoolListQuery struct {
	Search string
	Type   string
	Page   int
	Limit  int // listutil.LimitAll means unlimited
}

// SchoolWithSize represents a school with its derived team count.
type SchoolWithSize struct {
	domainSchool.School
	Location  string `json:"location"`
	TeamCount int    `json:"teamCount"`
}

// GetSchoolListResult carries the query result.
type GetSchoolListResult struct {
	Schools []SchoolWithSize
	Page    listutil.PageInfo
}

// GetSchoolListDeps holds dependencies for GetSchoolList.
type GetSchoolListDeps struct {
	SchoolStore SchoolStore
	TeamStore   TeamStore
}

// QueryGetSchoolList retrieves a filtered, paged school list with derived
// team counts and rendered locations.
// PRE: Valid query parameters
// POST: Returns schools matching the filters, in roster order
func QueryGetSchoolList(ctx context.Context, query GetSchoolListQuery, deps GetSchoolListDeps) (GetSchoolListResult, error) {
	filter := school.ListFilter{
		Search: query.Search,
		Type:   query.Type,
	}

	total, err := deps.SchoolStore.Count(ctx, filter)
	if err != nil {
		return GetSchoolListResult{}, err
	}

	page := listutil.NewPageInfo(query.Page, query.Limit, total)
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	schools, err := deps.SchoolStore.List(ctx, filter)
	if err != nil {
		return GetSchoolListResult{}, err
	}

	teams, err := deps.TeamStore.List(ctx, team.ListFilter{})
	if err != nil {
		return GetSchoolListResult{}, err
	}
	teamsBySchool := make(map[string]int)
	for _, t := range teams {
		teamsBySchool[t.School]++
	}

	result := make([]SchoolWithSize, 0, len(schools))
	for _, s := range schools {
		result = append(result, SchoolWithSize{
			School:    s,
			Location:  s.Location(),
			TeamCount: teamsBySchool[s.Name],
		})
	}

	return GetSchoolListResult{Schools: result, Page: page}, nil
}
