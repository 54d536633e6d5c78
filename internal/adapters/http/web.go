package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"motive/internal/adapters/http/middleware"
	"motive/internal/adapters/http/perf"
	accountStore "motive/internal/adapters/storage/account"
	athleteStore "motive/internal/adapters/storage/athlete"
	coachStore "motive/internal/adapters/storage/coach"
	schoolStore "motive/internal/adapters/storage/school"
	sessionStore "motive/internal/adapters/storage/session"
	teamStore "motive/internal/adapters/storage/team"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore accountStore.Store
	AthleteStore athleteStore.Store
	CoachStore   coachStore.Store
	TeamStore    teamStore.Store
	SchoolStore  schoolStore.Store
	SessionStore sessionStore.Store
}

// loadCSRFKey reads the CSRF secret from MOTIVE_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("MOTIVE_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("MOTIVE_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("MOTIVE_ENV") == "production" {
		log.Fatal("MOTIVE_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (forms won't survive restart). Set MOTIVE_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Auth(s.SessionStore),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
