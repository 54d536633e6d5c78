package session

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"motive/internal/adapters/storage"
)

// openTestDB creates an in-memory SQLite database with the session schema.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return db
}

// TestSessionRoundTrip verifies Create/Get/Delete against a real schema.
func TestSessionRoundTrip(t *testing.T) {
	s := NewSQLiteStore(openTestDB(t))
	ctx := context.Background()

	created := Session{
		Token:     "tok-1",
		AccountID: "acct-1",
		Email:     "admin@example.com",
		Role:      "admin",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := s.Create(ctx, created); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := s.Get(ctx, "tok-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.AccountID != "acct-1" || got.Email != "admin@example.com" || got.Role != "admin" {
		t.Errorf("session fields wrong: %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, created.CreatedAt)
	}

	if err := s.Delete(ctx, "tok-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(ctx, "tok-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete error = %v, want ErrNotFound", err)
	}
}

// TestGet_UnknownToken verifies the sentinel error.
func TestGet_UnknownToken(t *testing.T) {
	s := NewSQLiteStore(openTestDB(t))
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}

// TestDeleteExpired verifies only sessions older than the cutoff go.
func TestDeleteExpired(t *testing.T) {
	s := NewSQLiteStore(openTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	if err := s.Create(ctx, Session{Token: "old", AccountID: "a", Email: "e@x", Role: "admin", CreatedAt: now.Add(-48 * time.Hour)}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := s.Create(ctx, Session{Token: "fresh", AccountID: "a", Email: "e@x", Role: "admin", CreatedAt: now}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := s.DeleteExpired(ctx, now.Add(-24*time.Hour)); err != nil {
		t.Fatalf("DeleteExpired failed: %v", err)
	}

	if _, err := s.Get(ctx, "old"); !errors.Is(err, ErrNotFound) {
		t.Error("expired session survived the sweep")
	}
	if _, err := s.Get(ctx, "fresh"); err != nil {
		t.Errorf("fresh session was swept: %v", err)
	}
}
