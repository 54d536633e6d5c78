package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"motive/internal/adapters/storage/session"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

// SessionTTL is how long a login stays valid.
const SessionTTL = 24 * time.Hour

const sessionCookieName = "motive_session"

// NewSession builds a session record with a fresh random token.
// PRE: accountID, email, role are non-empty
// POST: Returns a Session ready to be stored
func NewSession(accountID, email, role string) (session.Session, error) {
	token, err := generateToken()
	if err != nil {
		return session.Session{}, err
	}
	return session.Session{
		Token:     token,
		AccountID: accountID,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}, nil
}

// Auth returns middleware that resolves the session cookie against the
// store and sets the session in context. Expired sessions are dropped at
// read time rather than swept. It does NOT block unauthenticated
// requests — use RequireAuth for that.
func Auth(sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err == nil && cookie.Value != "" {
				if sess, err := sessions.Get(r.Context(), cookie.Value); err == nil {
					if time.Since(sess.CreatedAt) > SessionTTL {
						_ = sessions.Delete(r.Context(), sess.Token)
					} else {
						ctx := context.WithValue(r.Context(), sessionContextKey, sess)
						r = r.WithContext(ctx)
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns middleware that blocks unauthenticated requests.
// Browser page requests are redirected to the login page; API requests
// get a plain 401 so fetch callers can react.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSessionFromContext(r.Context()); !ok {
			if isAPIRequest(r) {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(session.Session)
	return sess, ok
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   false, // Allow HTTP for local development
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(SessionTTL / time.Second),
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// SessionToken returns the raw token from the request cookie, if present.
func SessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// ContextWithSession returns a context with the given session set.
// Intended for use in tests.
func ContextWithSession(ctx context.Context, sess session.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

func isAPIRequest(r *http.Request) bool {
	return len(r.URL.Path) >= 5 && r.URL.Path[:5] == "/api/"
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
