package web

import (
	"errors"
	"net/http"

	athleteStore "motive/internal/adapters/storage/athlete"
	"motive/internal/application/listutil"
	"motive/internal/application/orchestrators"
	"motive/internal/application/projections"
	athleteDomain "motive/internal/domain/athlete"
)

// athleteFilterKeys are the structured filter parameters the athlete list accepts.
var athleteFilterKeys = []string{"school", "sport", "team"}

// handleAthleteList handles GET /api/athletes.
// Supports q (free-text search), school/sport/team filters, page and limit.
func handleAthleteList(w http.ResponseWriter, r *http.Request) {
	params := listutil.ParseListParams(r.URL.Query(), athleteFilterKeys)

	result, err := projections.QueryGetAthleteList(r.Context(), projections.GetAthleteListQuery{
		Search: params.Search,
		School: params.Filters["school"],
		Sport:  params.Filters["sport"],
		Team:   params.Filters["team"],
		Page:   params.Page,
		Limit:  params.Limit,
	}, projections.GetAthleteListDeps{AthleteStore: stores.AthleteStore})
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"athletes":   result.Athletes,
		"pagination": pageJSON(result.Page),
	})
}

// handleAthleteGet handles GET /api/athletes/{id}.
func handleAthleteGet(w http.ResponseWriter, r *http.Request) {
	a, err := stores.AthleteStore.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, athleteStore.ErrNotFound) {
			http.Error(w, "athlete not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// handleAthleteCreate handles POST /api/athletes.
func handleAthleteCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		Age    int    `json:"age"`
		Grade  int    `json:"grade"`
		Email  string `json:"email"`
		Phone  string `json:"phone"`
		Sport  string `json:"sport"`
		Team   string `json:"team"`
		School string `json:"school"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	added, err := orchestrators.ExecuteAddAthlete(r.Context(), orchestrators.AddAthleteInput{
		Name:   req.Name,
		Age:    req.Age,
		Grade:  req.Grade,
		Email:  req.Email,
		Phone:  req.Phone,
		Sport:  req.Sport,
		Team:   req.Team,
		School: req.School,
	}, orchestrators.ManageAthletesDeps{AthleteStore: stores.AthleteStore})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

// athletePatchRequest mirrors the store patch; absent fields stay unchanged.
type athletePatchRequest struct {
	Name        *string                    `json:"name"`
	Age         *int                       `json:"age"`
	Grade       *int                       `json:"grade"`
	Email       *string                    `json:"email"`
	Phone       *string                    `json:"phone"`
	Sport       *string                    `json:"sport"`
	Team        *string                    `json:"team"`
	School      *string                    `json:"school"`
	Performance *athleteDomain.Performance `json:"performance"`
}

func (req *athletePatchRequest) toPatch() athleteStore.Patch {
	return athleteStore.Patch{
		Name:        req.Name,
		Age:         req.Age,
		Grade:       req.Grade,
		Email:       req.Email,
		Phone:       req.Phone,
		Sport:       req.Sport,
		Team:        req.Team,
		School:      req.School,
		Performance: req.Performance,
	}
}

// handleAthleteUpdate handles PUT /api/athletes/{id}.
func handleAthleteUpdate(w http.ResponseWriter, r *http.Request) {
	var req athletePatchRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := orchestrators.ExecuteUpdateAthlete(r.Context(), r.PathValue("id"), req.toPatch(),
		orchestrators.ManageAthletesDeps{AthleteStore: stores.AthleteStore})
	if err != nil {
		if errors.Is(err, athleteStore.ErrNotFound) {
			http.Error(w, "athlete not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleAthleteDelete handles DELETE /api/athletes/{id}.
func handleAthleteDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteAthlete(r.Context(), r.PathValue("id"),
		orchestrators.ManageAthletesDeps{AthleteStore: stores.AthleteStore})
	if err != nil {
		if errors.Is(err, athleteStore.ErrNotFound) {
			http.Error(w, "athlete not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAthletePhoto handles POST /api/athletes/{id}/photo.
// Accepts a multipart "photo" image and stores it inline as a data URL.
func handleAthletePhoto(w http.ResponseWriter, r *http.Request) {
	dataURL, err := readPhotoDataURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := orchestrators.ExecuteUpdateAthlete(r.Context(), r.PathValue("id"),
		athleteStore.Patch{ProfilePicture: &dataURL},
		orchestrators.ManageAthletesDeps{AthleteStore: stores.AthleteStore})
	if err != nil {
		if errors.Is(err, athleteStore.ErrNotFound) {
			http.Error(w, "athlete not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
