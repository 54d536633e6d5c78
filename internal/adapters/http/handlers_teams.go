package web

import (
	"errors"
	"net/http"

	teamStore "motive/internal/adapters/storage/team"
	"motive/internal/application/listutil"
	"motive/internal/application/orchestrators"
	"motive/internal/application/projections"
)

// teamFilterKeys are the structured filter parameters the team list accepts.
var teamFilterKeys = []string{"school", "sport"}

// handleTeamList handles GET /api/teams.
// Supports q (free-text search), school/sport filters, page and limit.
func handleTeamList(w http.ResponseWriter, r *http.Request) {
	params := listutil.ParseListParams(r.URL.Query(), teamFilterKeys)

	result, err := projections.QueryGetTeamList(r.Context(), projections.GetTeamListQuery{
		Search: params.Search,
		School: params.Filters["school"],
		Sport:  params.Filters["sport"],
		Page:   params.Page,
		Limit:  params.Limit,
	}, projections.GetTeamListDeps{
		TeamStore:    stores.TeamStore,
		AthleteStore: stores.AthleteStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"teams":      result.Teams,
		"pagination": pageJSON(result.Page),
	})
}

// handleTeamGet handles GET /api/teams/{id}.
func handleTeamGet(w http.ResponseWriter, r *http.Request) {
	t, err := stores.TeamStore.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, teamStore.ErrNotFound) {
			http.Error(w, "team not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// handleTeamCreate handles POST /api/teams.
func handleTeamCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		Sport  string `json:"sport"`
		School string `json:"school"`
		Coach  string `json:"coach"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	added, err := orchestrators.ExecuteAddTeam(r.Context(), orchestrators.AddTeamInput{
		Name:   req.Name,
		Sport:  req.Sport,
		School: req.School,
		Coach:  req.Coach,
	}, teamDeps())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

// handleTeamUpdate handles PUT /api/teams/{id}.
// Renames cascade into athlete and coach team fields.
func handleTeamUpdate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   *string `json:"name"`
		Sport  *string `json:"sport"`
		School *string `json:"school"`
		Coach  *string `json:"coach"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	patch := teamStore.Patch{
		Name:   req.Name,
		Sport:  req.Sport,
		School: req.School,
		Coach:  req.Coach,
	}
	updated, err := orchestrators.ExecuteUpdateTeam(r.Context(), r.PathValue("id"), patch, teamDeps())
	if err != nil {
		if errors.Is(err, teamStore.ErrNotFound) {
			http.Error(w, "team not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleTeamDelete handles DELETE /api/teams/{id}.
func handleTeamDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteTeam(r.Context(), r.PathValue("id"), teamDeps())
	if err != nil {
		if errors.Is(err, teamStore.ErrNotFound) {
			http.Error(w, "team not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func teamDeps() orchestrators.ManageTeamsDeps {
	return orchestrators.ManageTeamsDeps{
		TeamStore:    stores.TeamStore,
		AthleteStore: stores.AthleteStore,
		CoachStore:   stores.CoachStore,
	}
}
