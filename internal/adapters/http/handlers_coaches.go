package web

import (
	"errors"
	"net/http"

	coachStore "motive/internal/adapters/storage/coach"
	"motive/internal/application/listutil"
	"motive/internal/application/orchestrators"
	"motive/internal/application/projections"
)

// coachFilterKeys are the structured filter parameters the coach list accepts.
var coachFilterKeys = []string{"school", "specialization", "team"}

// handleCoachList handles GET /api/coaches.
// Supports q (free-text search), school/specialization/team filters, page and limit.
func handleCoachList(w http.ResponseWriter, r *http.Request) {
	params := listutil.ParseListParams(r.URL.Query(), coachFilterKeys)

	result, err := projections.QueryGetCoachList(r.Context(), projections.GetCoachListQuery{
		Search:         params.Search,
		School:         params.Filters["school"],
		Specialization: params.Filters["specialization"],
		Team:           params.Filters["team"],
		Page:           params.Page,
		Limit:          params.Limit,
	}, projections.GetCoachListDeps{CoachStore: stores.CoachStore})
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"coaches":    result.Coaches,
		"pagination": pageJSON(result.Page),
	})
}

// handleCoachGet handles GET /api/coaches/{id}.
func handleCoachGet(w http.ResponseWriter, r *http.Request) {
	c, err := stores.CoachStore.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, coachStore.ErrNotFound) {
			http.Error(w, "coach not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// handleCoachCreate handles POST /api/coaches.
func handleCoachCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name           string `json:"name"`
		Email          string `json:"email"`
		Phone          string `json:"phone"`
		Team           string `json:"team"`
		School         string `json:"school"`
		Specialization string `json:"specialization"`
		Experience     string `json:"experience"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	added, err := orchestrators.ExecuteAddCoach(r.Context(), orchestrators.AddCoachInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Team:           req.Team,
		School:         req.School,
		Specialization: req.Specialization,
		Experience:     req.Experience,
	}, orchestrators.ManageCoachesDeps{CoachStore: stores.CoachStore})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

// coachPatchRequest mirrors the store patch; absent fields stay unchanged.
type coachPatchRequest struct {
	Name           *string   `json:"name"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	Team           *string   `json:"team"`
	School         *string   `json:"school"`
	Specialization *string   `json:"specialization"`
	Experience     *string   `json:"experience"`
	Achievements   *[]string `json:"achievements"`
}

func (req *coachPatchRequest) toPatch() coachStore.Patch {
	return coachStore.Patch{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Team:           req.Team,
		School:         req.School,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Achievements:   req.Achievements,
	}
}

// handleCoachUpdate handles PUT /api/coaches/{id}.
func handleCoachUpdate(w http.ResponseWriter, r *http.Request) {
	var req coachPatchRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := orchestrators.ExecuteUpdateCoach(r.Context(), r.PathValue("id"), req.toPatch(),
		orchestrators.ManageCoachesDeps{CoachStore: stores.CoachStore})
	if err != nil {
		if errors.Is(err, coachStore.ErrNotFound) {
			http.Error(w, "coach not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleCoachDelete handles DELETE /api/coaches/{id}.
func handleCoachDelete(w http.ResponseWriter, r *http.Request) {
	err := orchestrators.ExecuteDeleteCoach(r.Context(), r.PathValue("id"),
		orchestrators.ManageCoachesDeps{CoachStore: stores.CoachStore})
	if err != nil {
		if errors.Is(err, coachStore.ErrNotFound) {
			http.Error(w, "coach not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCoachPhoto handles POST /api/coaches/{id}/photo.
// Accepts a multipart "photo" image and stores it inline as a data URL.
func handleCoachPhoto(w http.ResponseWriter, r *http.Request) {
	dataURL, err := readPhotoDataURL(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := orchestrators.ExecuteUpdateCoach(r.Context(), r.PathValue("id"),
		coachStore.Patch{ProfilePicture: &dataURL},
		orchestrators.ManageCoachesDeps{CoachStore: stores.CoachStore})
	if err != nil {
		if errors.Is(err, coachStore.ErrNotFound) {
			http.Error(w, "coach not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
