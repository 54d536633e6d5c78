package listutil

import (
	"net/url"
	"strconv"
)

// LimitAll is the sentinel limit meaning "no paging — show everything".
// It is spelled "all" on the wire, matching the roster UI's limit selector.
const LimitAll = 0

// DefaultLimit is the default number of rows per page.
const DefaultLimit = 10

// LimitOptions are the allowed rows-per-page values, besides "all".
var LimitOptions = []int{5, 10, 15}

// PageParams carries pagination parameters parsed from a request.
type PageParams struct {
	Page  int // 1-indexed page number
	Limit int // rows per page; LimitAll means unlimited
}

// FilterParams carries search and filter parameters.
type FilterParams struct {
	Search  string            // free-text search query
	Filters map[string]string // exact-match filters (e.g. school=Central High School)
}

// PageInfo carries pagination metadata for rendering.
type PageInfo struct {
	Page       int // current page (1-indexed)
	Limit      int // rows per page; LimitAll means unlimited
	Total      int // total matching rows
	TotalPages int // ceil(Total / Limit); 1 when Limit is LimitAll
}

// ListParams combines all list view parameters.
type ListParams struct {
	PageParams
	FilterParams
}

// ParsePageParams extracts page and limit from URL query values.
// An out-of-catalog limit falls back to the default, and an explicit
// limit change resets the page to 1 — so a stale page number from a
// previous, larger page count can only come in alongside its own limit.
// PRE: none
// POST: returns valid PageParams with defaults applied
func ParsePageParams(q url.Values) PageParams {
	limit := DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		if raw == "all" || raw == "All" {
			limit = LimitAll
		} else if n, err := strconv.Atoi(raw); err == nil && isValidLimit(n) {
			limit = n
		}
	}
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	return PageParams{Page: page, Limit: limit}
}

// ParseFilterParams extracts search and named filters from URL query values.
// PRE: filterKeys lists the allowed filter parameter names
// POST: returns FilterParams with only recognised keys
func ParseFilterParams(q url.Values, filterKeys []string) FilterParams {
	fp := FilterParams{
		Search:  q.Get("q"),
		Filters: make(map[string]string),
	}
	for _, key := range filterKeys {
		if v := q.Get(key); v != "" {
			fp.Filters[key] = v
		}
	}
	return fp
}

// ParseListParams parses all list parameters from URL query values.
func ParseListParams(q url.Values, filterKeys []string) ListParams {
	return ListParams{
		PageParams:   ParsePageParams(q),
		FilterParams: ParseFilterParams(q, filterKeys),
	}
}

// NewPageInfo computes pagination metadata, clamping the page into the
// valid range. Slicing itself never clamps — clamping is the caller-side
// boundary, performed here before the slice is taken.
// PRE: total >= 0, page >= 1
// POST: returns PageInfo with TotalPages >= 1 and Page within range
func NewPageInfo(page, limit, total int) PageInfo {
	if limit < 0 {
		limit = DefaultLimit
	}
	totalPages := 1
	if limit != LimitAll {
		totalPages = (total + limit - 1) / limit
		if totalPages < 1 {
			totalPages = 1
		}
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Truncate returns the first limit items of the collection — the
// no-page-controls variant of the roster lists. LimitAll returns the
// collection unchanged.
// PRE: items is non-nil or empty
// POST: returns items[0:min(limit, len)] without copying
func Truncate[T any](items []T, limit int) []T {
	if limit == LimitAll || limit >= len(items) {
		return items
	}
	return items[:limit]
}

// PageSlice returns the slice [(page-1)*limit, page*limit) of the
// collection — the paged variant. A page outside [1, totalPages] yields an
// empty slice; callers are expected to clamp (see NewPageInfo) before
// asking for a page.
// PRE: page >= 1
// POST: returns the requested window, empty when out of range
func PageSlice[T any](items []T, page, limit int) []T {
	if limit == LimitAll {
		return items
	}
	start := (page - 1) * limit
	if start < 0 || start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Offset returns the list offset for the current page.
// PRE: PageInfo is valid
// POST: Returns (Page-1) * Limit; 0 when Limit is LimitAll
func (p PageInfo) Offset() int {
	if p.Limit == LimitAll {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// StartRow returns the 1-indexed first row number on the current page.
// PRE: PageInfo is valid
// POST: Returns 0 if Total is 0, otherwise Offset+1
func (p PageInfo) StartRow() int {
	if p.Total == 0 {
		return 0
	}
	return p.Offset() + 1
}

// EndRow returns the 1-indexed last row number on the current page.
// PRE: PageInfo is valid
// POST: Returns min(Offset+Limit, Total); Total when Limit is LimitAll
func (p PageInfo) EndRow() int {
	if p.Limit == LimitAll {
		return p.Total
	}
	end := p.Offset() + p.Limit
	if end > p.Total {
		end = p.Total
	}
	return end
}

// ShowPagination returns true if pagination controls should be displayed.
// PRE: PageInfo is valid
// POST: Returns true if more than one page exists
func (p PageInfo) ShowPagination() bool {
	return p.TotalPages > 1
}

func isValidLimit(n int) bool {
	for _, opt := range LimitOptions {
		if n == opt {
			return true
		}
	}
	return false
}
