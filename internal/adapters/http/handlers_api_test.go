package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"motive/internal/adapters/http/middleware"
	accountStore "motive/internal/adapters/storage/account"
	athleteStore "motive/internal/adapters/storage/athlete"
	coachStore "motive/internal/adapters/storage/coach"
	schoolStore "motive/internal/adapters/storage/school"
	sessionStore "motive/internal/adapters/storage/session"
	teamStore "motive/internal/adapters/storage/team"
	accountDomain "motive/internal/domain/account"
	athleteDomain "motive/internal/domain/athlete"
	coachDomain "motive/internal/domain/coach"
	teamDomain "motive/internal/domain/team"
)

// memSessionStore is an in-memory session.Store for handler tests; the real
// deployment uses the SQLite-backed store.
type memSessionStore struct {
	sessions map[string]sessionStore.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]sessionStore.Session)}
}

// Create stores the session.
// PRE: value.Token is non-empty
// POST: Session is retrievable by token
func (m *memSessionStore) Create(_ context.Context, value sessionStore.Session) error {
	m.sessions[value.Token] = value
	return nil
}

// Get returns the stored session or ErrNotFound.
// PRE: token is non-empty
// POST: Returns the session if present
func (m *memSessionStore) Get(_ context.Context, token string) (sessionStore.Session, error) {
	if s, ok := m.sessions[token]; ok {
		return s, nil
	}
	return sessionStore.Session{}, sessionStore.ErrNotFound
}

// Delete removes the session.
// PRE: token is non-empty
// POST: Session is gone
func (m *memSessionStore) Delete(_ context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

// DeleteExpired removes sessions created before the cutoff.
// PRE: before is valid
// POST: Older sessions are gone
func (m *memSessionStore) DeleteExpired(_ context.Context, before time.Time) error {
	for token, s := range m.sessions {
		if s.CreatedAt.Before(before) {
			delete(m.sessions, token)
		}
	}
	return nil
}

// newTestStores builds a fresh Stores backed by memory stores, with the
// default admin account seeded.
func newTestStores(t *testing.T) *Stores {
	t.Helper()
	accounts := accountStore.NewMemoryStore()

	admin := accountDomain.Account{
		ID:        "acct-admin",
		Email:     "motive.athleteanas@gmail.com",
		Role:      "admin",
		CreatedAt: time.Now(),
	}
	if err := admin.SetPassword("motive123"); err != nil {
		t.Fatalf("seeding admin password: %v", err)
	}
	if err := accounts.Save(context.Background(), admin); err != nil {
		t.Fatalf("seeding admin: %v", err)
	}

	return &Stores{
		AccountStore: accounts,
		AthleteStore: athleteStore.NewMemoryStore(),
		CoachStore:   coachStore.NewMemoryStore(),
		TeamStore:    teamStore.NewMemoryStore(),
		SchoolStore:  schoolStore.NewMemoryStore(),
		SessionStore: newMemSessionStore(),
	}
}

// jsonRequest builds a request carrying a JSON body and an authenticated
// session, the shape every protected handler sees after the middleware chain.
func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return asAdmin(req)
}

// asAdmin attaches an admin session to the request context.
func asAdmin(req *http.Request) *http.Request {
	sess := sessionStore.Session{
		Token:     "test-token",
		AccountID: "acct-admin",
		Email:     "motive.athleteanas@gmail.com",
		Role:      "admin",
		CreatedAt: time.Now(),
	}
	return req.WithContext(middleware.ContextWithSession(req.Context(), sess))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return body
}

// TestHandleLogin_Success verifies a valid login sets the session cookie
// and creates the session server-side.
func TestHandleLogin_Success(t *testing.T) {
	stores = newTestStores(t)

	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(
		`{"email":"motive.athleteanas@gmail.com","password":"motive123"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["redirect"] != "/dashboard" {
		t.Errorf("redirect = %v, want /dashboard", body["redirect"])
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "motive_session" {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatal("session cookie not set")
	}
	if _, err := stores.SessionStore.Get(context.Background(), cookie.Value); err != nil {
		t.Errorf("session not persisted: %v", err)
	}
}

// TestHandleLogin_InvalidCredentials verifies a wrong password yields 401.
func TestHandleLogin_InvalidCredentials(t *testing.T) {
	stores = newTestStores(t)

	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(
		`{"email":"motive.athleteanas@gmail.com","password":"wrong-password"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("cookie set on failed login")
	}
}

// TestHandleLogin_Lockout verifies repeated failures lock the account with 429.
func TestHandleLogin_Lockout(t *testing.T) {
	stores = newTestStores(t)

	attempt := func(password string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/login", strings.NewReader(
			fmt.Sprintf(`{"email":"motive.athleteanas@gmail.com","password":%q}`, password)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handleLogin(rec, req)
		return rec
	}

	for i := 0; i < 5; i++ {
		if rec := attempt("wrong-password"); rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: status = %d, want 401", i+1, rec.Code)
		}
	}
	if rec := attempt("motive123"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("locked login status = %d, want 429", rec.Code)
	}
}

// TestHandleLogout clears the cookie and drops the server-side session.
func TestHandleLogout(t *testing.T) {
	stores = newTestStores(t)
	stores.SessionStore.Create(context.Background(), sessionStore.Session{
		Token: "tok-1", AccountID: "acct-admin", CreatedAt: time.Now(),
	})

	req := httptest.NewRequest("POST", "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: "motive_session", Value: "tok-1"})
	rec := httptest.NewRecorder()
	handleLogout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if _, err := stores.SessionStore.Get(context.Background(), "tok-1"); err == nil {
		t.Error("session still present after logout")
	}
}

// TestHandleSessionInfo reports authenticated state from context.
func TestHandleSessionInfo(t *testing.T) {
	stores = newTestStores(t)

	rec := httptest.NewRecorder()
	handleSessionInfo(rec, asAdmin(httptest.NewRequest("GET", "/api/session", nil)))
	body := decodeBody(t, rec)
	if body["authenticated"] != true {
		t.Errorf("authenticated = %v, want true", body["authenticated"])
	}

	rec = httptest.NewRecorder()
	handleSessionInfo(rec, httptest.NewRequest("GET", "/api/session", nil))
	body = decodeBody(t, rec)
	if body["authenticated"] != false {
		t.Errorf("anonymous authenticated = %v, want false", body["authenticated"])
	}
}

func seedHandlerAthletes(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		sport := "Soccer"
		if i%2 == 1 {
			sport = "Tennis"
		}
		_, err := stores.AthleteStore.Add(context.Background(), athleteDomain.Athlete{
			Name:   fmt.Sprintf("Athlete %02d", i),
			Age:    15,
			Grade:  10,
			Email:  fmt.Sprintf("athlete%02d@example.com", i),
			Sport:  sport,
			Team:   "Central Valley High " + sport,
			School: "Central Valley High",
			Performance: athleteDomain.Performance{
				Strength: 70, Speed: 70, Endurance: 70, Agility: 70, Attendance: 90,
			},
		})
		if err != nil {
			t.Fatalf("seeding athlete %d: %v", i, err)
		}
	}
}

// TestHandleAthleteList_Pagination verifies page/limit params flow through to
// the pagination envelope.
func TestHandleAthleteList_Pagination(t *testing.T) {
	stores = newTestStores(t)
	seedHandlerAthletes(t, 12)

	rec := httptest.NewRecorder()
	handleAthleteList(rec, jsonRequest("GET", "/api/athletes?page=2&limit=5", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	athletes := body["athletes"].([]any)
	if len(athletes) != 5 {
		t.Errorf("page size = %d, want 5", len(athletes))
	}
	pagination := body["pagination"].(map[string]any)
	if pagination["page"] != float64(2) || pagination["total"] != float64(12) {
		t.Errorf("pagination = %v", pagination)
	}
	if pagination["totalPages"] != float64(3) {
		t.Errorf("totalPages = %v, want 3", pagination["totalPages"])
	}
	if pagination["startRow"] != float64(6) || pagination["endRow"] != float64(10) {
		t.Errorf("rows = %v-%v, want 6-10", pagination["startRow"], pagination["endRow"])
	}
}

// TestHandleAthleteList_AllLimit verifies limit=all disables windowing and is
// echoed back as "all".
func TestHandleAthleteList_AllLimit(t *testing.T) {
	stores = newTestStores(t)
	seedHandlerAthletes(t, 12)

	rec := httptest.NewRecorder()
	handleAthleteList(rec, jsonRequest("GET", "/api/athletes?limit=all", nil))

	body := decodeBody(t, rec)
	if got := len(body["athletes"].([]any)); got != 12 {
		t.Errorf("athletes = %d, want 12", got)
	}
	pagination := body["pagination"].(map[string]any)
	if pagination["limit"] != "all" {
		t.Errorf("limit = %v, want \"all\"", pagination["limit"])
	}
	if pagination["showPagination"] != false {
		t.Errorf("showPagination = %v, want false", pagination["showPagination"])
	}
}

// TestHandleAthleteList_SearchAndFilter verifies q and structured filters
// combine with AND semantics.
func TestHandleAthleteList_SearchAndFilter(t *testing.T) {
	stores = newTestStores(t)
	seedHandlerAthletes(t, 12)

	rec := httptest.NewRecorder()
	handleAthleteList(rec, jsonRequest("GET", "/api/athletes?q=athlete+0&sport=Tennis", nil))

	body := decodeBody(t, rec)
	athletes := body["athletes"].([]any)
	// "athlete 0" matches Athlete 00..09; Tennis keeps the odd half.
	if len(athletes) != 5 {
		t.Errorf("matches = %d, want 5", len(athletes))
	}
	for _, raw := range athletes {
		a := raw.(map[string]any)
		if a["sport"] != "Tennis" {
			t.Errorf("athlete %v leaked through sport filter", a["name"])
		}
	}
}

// TestHandleAthleteCreateAndGet round-trips an athlete through the handlers.
func TestHandleAthleteCreateAndGet(t *testing.T) {
	stores = newTestStores(t)

	rec := httptest.NewRecorder()
	handleAthleteCreate(rec, jsonRequest("POST", "/api/athletes", map[string]any{
		"name": "John Doe", "age": 16, "grade": 11,
		"email": "john.doe@example.com", "sport": "Soccer",
		"team": "Central Valley High Soccer", "school": "Central Valley High",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeBody(t, rec)
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("created athlete has no id")
	}

	req := jsonRequest("GET", "/api/athletes/"+id, nil)
	req.SetPathValue("id", id)
	rec = httptest.NewRecorder()
	handleAthleteGet(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	if got := decodeBody(t, rec); got["name"] != "John Doe" {
		t.Errorf("name = %v, want John Doe", got["name"])
	}
}

// TestHandleAthleteCreate_Invalid rejects bad payloads with 400.
func TestHandleAthleteCreate_Invalid(t *testing.T) {
	stores = newTestStores(t)

	// Validation failure: age outside range.
	rec := httptest.NewRecorder()
	handleAthleteCreate(rec, jsonRequest("POST", "/api/athletes", map[string]any{
		"name": "Too Young", "age": 5, "email": "x@example.com",
		"sport": "Soccer", "team": "T", "school": "S",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid age status = %d, want 400", rec.Code)
	}

	// Unknown field in body.
	req := asAdmin(httptest.NewRequest("POST", "/api/athletes",
		strings.NewReader(`{"name":"X","bogus":true}`)))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	handleAthleteCreate(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown field status = %d, want 400", rec.Code)
	}
}

// TestHandleAthleteUpdate_PartialPatch leaves absent fields untouched.
func TestHandleAthleteUpdate_PartialPatch(t *testing.T) {
	stores = newTestStores(t)
	seedHandlerAthletes(t, 1)
	all, _ := stores.AthleteStore.List(context.Background(), athleteStore.ListFilter{})
	id := all[0].ID

	req := jsonRequest("PUT", "/api/athletes/"+id, map[string]any{"grade": 12})
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	handleAthleteUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	updated, _ := stores.AthleteStore.GetByID(context.Background(), id)
	if updated.Grade != 12 {
		t.Errorf("grade = %d, want 12", updated.Grade)
	}
	if updated.Name != all[0].Name || updated.Sport != all[0].Sport {
		t.Error("untouched fields changed")
	}
}

// TestHandleAthleteUpdate_NotFound maps a missing id to 404.
func TestHandleAthleteUpdate_NotFound(t *testing.T) {
	stores = newTestStores(t)

	req := jsonRequest("PUT", "/api/athletes/no-such-id", map[string]any{"grade": 12})
	req.SetPathValue("id", "no-such-id")
	rec := httptest.NewRecorder()
	handleAthleteUpdate(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// TestHandleAthleteDelete removes the record and 404s on the second call.
func TestHandleAthleteDelete(t *testing.T) {
	stores = newTestStores(t)
	seedHandlerAthletes(t, 1)
	all, _ := stores.AthleteStore.List(context.Background(), athleteStore.ListFilter{})
	id := all[0].ID

	req := jsonRequest("DELETE", "/api/athletes/"+id, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	handleAthleteDelete(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	req = jsonRequest("DELETE", "/api/athletes/"+id, nil)
	req.SetPathValue("id", id)
	rec = httptest.NewRecorder()
	handleAthleteDelete(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

// pngHeader is the 8-byte PNG signature followed by enough bytes for
// content-type sniffing.
var pngHeader = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)

func multipartPhotoRequest(t *testing.T, target string, payload []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", "avatar.png")
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	part.Write(payload)
	mw.Close()

	req := httptest.NewRequest("POST", target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return asAdmin(req)
}

// TestHandleAthletePhoto stores an uploaded image as an inline data URL.
func TestHandleAthletePhoto(t *testing.T) {
	stores = newTestStores(t)
	seedHandlerAthletes(t, 1)
	all, _ := stores.AthleteStore.List(context.Background(), athleteStore.ListFilter{})
	id := all[0].ID

	req := multipartPhotoRequest(t, "/api/athletes/"+id+"/photo", pngHeader)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	handleAthletePhoto(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	updated, _ := stores.AthleteStore.GetByID(context.Background(), id)
	if !strings.HasPrefix(updated.ProfilePicture, "data:image/png;base64,") {
		t.Errorf("profile picture = %q, want png data URL", updated.ProfilePicture)
	}
}

// TestHandleAthletePhoto_RejectsNonImage refuses payloads that do not sniff
// as a supported image type.
func TestHandleAthletePhoto_RejectsNonImage(t *testing.T) {
	stores = newTestStores(t)
	seedHandlerAthletes(t, 1)
	all, _ := stores.AthleteStore.List(context.Background(), athleteStore.ListFilter{})
	id := all[0].ID

	req := multipartPhotoRequest(t, "/api/athletes/"+id+"/photo", []byte("not an image at all"))
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	handleAthletePhoto(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestHandleTeamUpdate_RenameCascade verifies the rename propagates to member
// athletes and coaches through the handler.
func TestHandleTeamUpdate_RenameCascade(t *testing.T) {
	stores = newTestStores(t)
	ctx := context.Background()

	team, err := stores.TeamStore.Add(ctx, teamDomain.Team{
		Name: "Central Valley High Soccer", Sport: "Soccer", School: "Central Valley High",
	})
	if err != nil {
		t.Fatalf("seeding team: %v", err)
	}
	athlete, _ := stores.AthleteStore.Add(ctx, athleteDomain.Athlete{
		Name: "John Doe", Age: 16, Email: "john@example.com",
		Sport: "Soccer", Team: team.Name, School: "Central Valley High",
	})
	coach, _ := stores.CoachStore.Add(ctx, coachDomain.Coach{
		Name: "Jane Roe", Email: "jane@example.com", Specialization: "Soccer",
		Team: team.Name, School: "Central Valley High", Experience: "8 years",
	})

	req := jsonRequest("PUT", "/api/teams/"+team.ID, map[string]any{
		"name": "Central Valley Strikers",
	})
	req.SetPathValue("id", team.ID)
	rec := httptest.NewRecorder()
	handleTeamUpdate(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	gotAthlete, _ := stores.AthleteStore.GetByID(ctx, athlete.ID)
	if gotAthlete.Team != "Central Valley Strikers" {
		t.Errorf("athlete team = %q, cascade did not run", gotAthlete.Team)
	}
	gotCoach, _ := stores.CoachStore.GetByID(ctx, coach.ID)
	if gotCoach.Team != "Central Valley Strikers" {
		t.Errorf("coach team = %q, cascade did not run", gotCoach.Team)
	}
}

// TestHandleDashboard aggregates counts from every store.
func TestHandleDashboard(t *testing.T) {
	stores = newTestStores(t)
	seedHandlerAthletes(t, 4)

	rec := httptest.NewRecorder()
	handleDashboard(rec, jsonRequest("GET", "/api/dashboard", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["athleteCount"] != float64(4) {
		t.Errorf("athleteCount = %v, want 4", body["athleteCount"])
	}
}

// TestMux_PhotoUpload drives a multipart photo upload through the full
// middleware chain: fetch the CSRF token from /api/session, then upload with
// the token in the X-CSRF-Token header. A tokenless upload must be refused.
func TestMux_PhotoUpload(t *testing.T) {
	s := newTestStores(t)
	ctx := context.Background()

	a, err := s.AthleteStore.Add(ctx, athleteDomain.Athlete{
		Name: "John Doe", Age: 16, Email: "john@example.com",
		Sport: "Soccer", Team: "Central Valley High Soccer", School: "Central Valley High",
	})
	if err != nil {
		t.Fatalf("seeding athlete: %v", err)
	}
	sess, err := middleware.NewSession("acct-admin", "motive.athleteanas@gmail.com", "admin")
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	s.SessionStore.Create(ctx, sess)
	handler := NewMux(t.TempDir(), s, nil)

	// Fetch the CSRF token the way the browser does.
	req := httptest.NewRequest("GET", "http://localhost:8080/api/session", nil)
	req.AddCookie(&http.Cookie{Name: "motive_session", Value: sess.Token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("session info status = %d: %s", rec.Code, rec.Body.String())
	}
	token, _ := decodeBody(t, rec)["csrfToken"].(string)
	if token == "" {
		t.Fatal("session info carries no csrf token")
	}
	csrfCookies := rec.Result().Cookies()

	upload := multipartPhotoRequest(t, "http://localhost:8080/api/athletes/"+a.ID+"/photo", pngHeader)
	upload.Header.Set("Origin", "http://localhost:8080")
	upload.Header.Set("X-CSRF-Token", token)
	upload.AddCookie(&http.Cookie{Name: "motive_session", Value: sess.Token})
	for _, c := range csrfCookies {
		upload.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, upload)
	if rec.Code != http.StatusOK {
		t.Fatalf("upload status = %d: %s", rec.Code, rec.Body.String())
	}
	updated, _ := s.AthleteStore.GetByID(ctx, a.ID)
	if !strings.HasPrefix(updated.ProfilePicture, "data:image/png;base64,") {
		t.Errorf("profile picture = %q, want png data URL", updated.ProfilePicture)
	}

	// Same upload without the token header is refused.
	bare := multipartPhotoRequest(t, "http://localhost:8080/api/athletes/"+a.ID+"/photo", pngHeader)
	bare.Header.Set("Origin", "http://localhost:8080")
	bare.AddCookie(&http.Cookie{Name: "motive_session", Value: sess.Token})
	for _, c := range csrfCookies {
		bare.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, bare)
	if rec.Code != http.StatusForbidden {
		t.Errorf("tokenless upload status = %d, want 403", rec.Code)
	}
}

// TestMux_RequiresAuth drives a request through the full middleware chain and
// checks protected API routes reject anonymous callers.
func TestMux_RequiresAuth(t *testing.T) {
	s := newTestStores(t)
	handler := NewMux(t.TempDir(), s, nil)

	req := httptest.NewRequest("GET", "/api/athletes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous API status = %d, want 401", rec.Code)
	}
}
