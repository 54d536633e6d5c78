package web

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gorilla/csrf"

	"motive/internal/adapters/http/middleware"
	"motive/internal/application/listutil"
	"motive/internal/application/orchestrators"
	"motive/internal/application/projections"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// pageJSON renders pagination metadata the way the roster UI expects:
// the "all" limit is spelled out rather than sent as zero.
func pageJSON(p listutil.PageInfo) map[string]any {
	limit := any(p.Limit)
	if p.Limit == listutil.LimitAll {
		limit = "all"
	}
	return map[string]any{
		"page":           p.Page,
		"limit":          limit,
		"total":          p.Total,
		"totalPages":     p.TotalPages,
		"startRow":       p.StartRow(),
		"endRow":         p.EndRow(),
		"showPagination": p.ShowPagination(),
	}
}

// handleLogin handles POST /api/login.
// A GET from an already-authenticated browser is bounced to the dashboard,
// matching the login page's behavior.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteLogin(r.Context(),
		orchestrators.LoginInput{Email: req.Email, Password: req.Password},
		orchestrators.LoginDeps{AccountStore: stores.AccountStore})
	if err != nil {
		switch {
		case errors.Is(err, orchestrators.ErrAccountLocked):
			http.Error(w, err.Error(), http.StatusTooManyRequests)
		case errors.Is(err, orchestrators.ErrInvalidCredentials):
			http.Error(w, err.Error(), http.StatusUnauthorized)
		default:
			internalError(w, err)
		}
		return
	}

	sess, err := middleware.NewSession(result.AccountID, result.Email, result.Role)
	if err != nil {
		internalError(w, err)
		return
	}
	if err := stores.SessionStore.Create(r.Context(), sess); err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, sess.Token)

	writeJSON(w, http.StatusOK, map[string]any{
		"email":    result.Email,
		"role":     result.Role,
		"redirect": "/dashboard",
	})
}

// handleLogout handles POST /api/logout.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if token := middleware.SessionToken(r); token != "" {
		_ = stores.SessionStore.Delete(r.Context(), token)
	}
	middleware.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"redirect": "/login"})
}

// handleSessionInfo handles GET /api/session. The login page polls this to
// decide whether to bounce an already-authenticated visitor to the dashboard.
// The response carries the CSRF token for non-JSON calls (photo uploads are
// multipart and must send it back in the X-CSRF-Token header).
func handleSessionInfo(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{
			"authenticated": false,
			"csrfToken":     csrf.Token(r),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"email":         sess.Email,
		"role":          sess.Role,
		"csrfToken":     csrf.Token(r),
	})
}

// handleDashboard handles GET /api/dashboard.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetDashboard(r.Context(), projections.GetDashboardDeps{
		AthleteStore: stores.AthleteStore,
		CoachStore:   stores.CoachStore,
		TeamStore:    stores.TeamStore,
		SchoolStore:  stores.SchoolStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handlePerfSnapshot handles GET /api/perf. Returns aggregated request
// timings for the last hour.
func handlePerfSnapshot(w http.ResponseWriter, r *http.Request) {
	if perfCollector == nil {
		http.Error(w, "perf collection disabled", http.StatusNotFound)
		return
	}
	snap := perfCollector.Snapshot(timeNow().Add(-time.Hour), 10)
	writeJSON(w, http.StatusOK, snap)
}

const maxPhotoUpload = 2 << 20 // 2 MB

// readPhotoDataURL reads an uploaded image from the "photo" multipart field
// and returns it as a data: URL for inline storage on the record.
func readPhotoDataURL(r *http.Request) (string, error) {
	if err := r.ParseMultipartForm(maxPhotoUpload + 64*1024); err != nil {
		return "", errors.New("request too large or malformed")
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		return "", errors.New("photo file is required")
	}
	defer file.Close()
	if header.Size > maxPhotoUpload {
		return "", errors.New("photo must be under 2 MB")
	}
	return encodePhotoDataURL(file)
}

func encodePhotoDataURL(file multipart.File) (string, error) {
	data, err := io.ReadAll(io.LimitReader(file, maxPhotoUpload+1))
	if err != nil {
		return "", errors.New("failed to read photo")
	}
	if len(data) > maxPhotoUpload {
		return "", errors.New("photo must be under 2 MB")
	}
	contentType := http.DetectContentType(data)
	switch contentType {
	case "image/png", "image/jpeg", "image/webp", "image/gif":
	default:
		return "", errors.New("photo must be an image (png, jpeg, webp, gif)")
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
