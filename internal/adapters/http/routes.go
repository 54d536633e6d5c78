package web

import (
	"net/http"

	"motive/internal/adapters/http/middleware"
)

// authed wraps a handler with the login requirement.
func authed(h http.HandlerFunc) http.Handler {
	return middleware.RequireAuth(h)
}

// registerRoutes wires all application routes onto the mux.
// The login and session-info endpoints are public; everything else
// requires an authenticated session.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/login", handleLogin)
	mux.HandleFunc("GET /api/session", handleSessionInfo)
	mux.HandleFunc("POST /api/logout", handleLogout)

	mux.Handle("GET /api/dashboard", authed(handleDashboard))
	mux.Handle("GET /api/perf", authed(handlePerfSnapshot))

	mux.Handle("GET /api/athletes", authed(handleAthleteList))
	mux.Handle("POST /api/athletes", authed(handleAthleteCreate))
	mux.Handle("GET /api/athletes/{id}", authed(handleAthleteGet))
	mux.Handle("PUT /api/athletes/{id}", authed(handleAthleteUpdate))
	mux.Handle("DELETE /api/athletes/{id}", authed(handleAthleteDelete))
	mux.Handle("POST /api/athletes/{id}/photo", authed(handleAthletePhoto))

	mux.Handle("GET /api/coaches", authed(handleCoachList))
	mux.Handle("POST /api/coaches", authed(handleCoachCreate))
	mux.Handle("GET /api/coaches/{id}", authed(handleCoachGet))
	mux.Handle("PUT /api/coaches/{id}", authed(handleCoachUpdate))
	mux.Handle("DELETE /api/coaches/{id}", authed(handleCoachDelete))
	mux.Handle("POST /api/coaches/{id}/photo", authed(handleCoachPhoto))

	mux.Handle("GET /api/teams", authed(handleTeamList))
	mux.Handle("POST /api/teams", authed(handleTeamCreate))
	mux.Handle("GET /api/teams/{id}", authed(handleTeamGet))
	mux.Handle("PUT /api/teams/{id}", authed(handleTeamUpdate))
	mux.Handle("DELETE /api/teams/{id}", authed(handleTeamDelete))

	mux.Handle("GET /api/schools", authed(handleSchoolList))
	mux.Handle("POST /api/schools", authed(handleSchoolCreate))
	mux.Handle("GET /api/schools/{id}", authed(handleSchoolGet))
	mux.Handle("PUT /api/schools/{id}", authed(handleSchoolUpdate))
	mux.Handle("DELETE /api/schools/{id}", authed(handleSchoolDelete))
}
