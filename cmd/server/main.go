package main

import (
	"context"
	"database/sql"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	web "motive/internal/adapters/http"
	"motive/internal/adapters/http/perf"
	"motive/internal/adapters/storage"
	accountStore "motive/internal/adapters/storage/account"
	athleteStore "motive/internal/adapters/storage/athlete"
	coachStore "motive/internal/adapters/storage/coach"
	schoolStore "motive/internal/adapters/storage/school"
	sessionStore "motive/internal/adapters/storage/session"
	teamStore "motive/internal/adapters/storage/team"
	"motive/internal/application/generator"
	"motive/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Sessions are the only persisted state; the roster lives in memory
	// and is reseeded on every start.
	dbPath := envOrDefault("MOTIVE_DB", "motive.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	sessions := sessionStore.NewSQLiteStore(db)
	// Expired logins accumulate otherwise; one sweep at boot is enough
	// for a single-admin deployment.
	if err := sessions.DeleteExpired(context.Background(), time.Now().Add(-24*time.Hour)); err != nil {
		log.Fatalf("failed to sweep expired sessions: %v", err)
	}

	acctStore := accountStore.NewMemoryStore()
	stores := &web.Stores{
		AccountStore: acctStore,
		AthleteStore: athleteStore.NewMemoryStore(),
		CoachStore:   coachStore.NewMemoryStore(),
		TeamStore:    teamStore.NewMemoryStore(),
		SchoolStore:  schoolStore.NewMemoryStore(),
		SessionStore: sessions,
	}

	// Seed the admin account if it does not exist yet
	adminEmail := envOrDefault("MOTIVE_ADMIN_EMAIL", "motive.athleteanas@gmail.com")
	adminPassword := envOrDefault("MOTIVE_ADMIN_PASSWORD", "motive123")
	seedDeps := orchestrators.SeedAdminDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, adminEmail, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Seed the roster. MOTIVE_SEED pins the generator so demo names and
	// values repeat across restarts (IDs stay fresh); unset, every start
	// gets a fresh roster.
	var rng *rand.Rand
	if raw := os.Getenv("MOTIVE_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			log.Fatalf("MOTIVE_SEED must be an unsigned integer: %v", err)
		}
		rng = rand.New(rand.NewPCG(seed, seed))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	gen, err := generator.New(rng)
	if err != nil {
		log.Fatalf("failed to build roster generator: %v", err)
	}
	rosterDeps := orchestrators.SeedRosterDeps{
		SchoolStore:  stores.SchoolStore,
		TeamStore:    stores.TeamStore,
		AthleteStore: stores.AthleteStore,
		CoachStore:   stores.CoachStore,
	}
	if err := orchestrators.ExecuteSeedRoster(context.Background(), rosterDeps, gen); err != nil {
		log.Fatalf("failed to seed roster: %v", err)
	}

	// Create HTTP handler with middleware (pass collector for timing + perf endpoint)
	collector := perf.NewCollector(perf.DefaultRingSize)
	mux := web.NewMux(envOrDefault("MOTIVE_STATIC_DIR", "static"), stores, collector)

	addr := envOrDefault("MOTIVE_ADDR", ":8080")
	log.Printf("Motive %s starting on %s (env=%s)", version, addr, envOrDefault("MOTIVE_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
