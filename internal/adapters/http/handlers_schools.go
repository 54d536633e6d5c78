package web

import (
	"errors"
	"net/http"

	schoolStore "motive/internal/adapters/storage/school"
	"motive/internal/application/listutil"
	"motive/internal/application/orchestrators"
	"motive/internal/application/projections"
)

// schoolFilterKeys are the structured filter parameters the school list accepts.
var schoolFilterKeys = []string{"type"}

// handleSchoolList handles GET /api/schools.
// Supports q (free-text search), type filter, page and limit.
func handleSchoolList(w http.ResponseWriter, r *http.Request) {
	params := listutil.ParseListParams(r.URL.Query(), schoolFilterKeys)

	result, err := projections.QueryGetSchoolList(r.Context(), projections.GetSchoolListQuery{
		Search: params.Search,
		Type:   params.Filters["type"],
		Page:   params.Page,
		Limit:  params.Limit,
	}, projections.GetSchoolListDeps{
		SchoolStore: stores.SchoolStore,
		TeamStore:   stores.TeamStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"schools":    result.Schools,
		"pagination": pageJSON(result.Page),
	})
}

// handleSchoolGet handles GET /api/schools/{id}.
func handleSchoolGet(w http.ResponseWriter, r *http.Request) {
	s, err := stores.SchoolStore.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, schoolStore.ErrNotFound) {
			http.Error(w, "school not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// handleSchoolCreate handles POST /api/schools.
func handleSchoolCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		City  string `json:"city"`
		State string `json:"state"`
		Type  string `json:"type"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	added, err := orchestrators.ExecuteAddSchool(r.Context(), orchestrators.AddSchoolInput{
		Name:  req.Name,
		City:  req.City,
		State: req.State,
		Type:  req.Type,
	}, stores.SchoolStore)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

// handleSchoolUpdate handles PUT /api/schools/{id}.
func handleSchoolUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  *string `json:"name"`
		City  *string `json:"city"`
		State *string `json:"state"`
		Type  *string `json:"type"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	patch := schoolStore.Patch{
		Name:  req.Name,
		City:  req.City,
		State: req.State,
		Type:  req.Type,
	}
	updated, err := orchestrators.ExecuteUpdateSchool(r.Context(), r.PathValue("id"), patch, stores.SchoolStore)
	if err != nil {
		if errors.Is(err, schoolStore.ErrNotFound) {
			http.Error(w, "school not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleSchoolDelete handles DELETE /api/schools/{id}.
func handleSchoolDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteSchool(r.Context(), r.PathValue("id"), stores.SchoolStore)
	if err != nil {
		if errors.Is(err, schoolStore.ErrNotFound) {
			http.Error(w, "school not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
