package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteStore implements Store using SQLite. Sessions are the only state
// in the system that outlives the process.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SessionStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Create persists a Session.
// PRE: value.Token is non-empty and unique
// POST: Session is stored
func (s *SQLiteStore) Create(ctx context.Context, value Session) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO session (token, account_id, email, role, created_at) VALUES (?, ?, ?, ?, ?)",
		value.Token,
		value.AccountID,
		value.Email,
		value.Role,
		value.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Get retrieves a Session by token.
// PRE: token is non-empty
// POST: Returns the session or ErrNotFound
func (s *SQLiteStore) Get(ctx context.Context, token string) (Session, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT token, account_id, email, role, created_at FROM session WHERE token = ?", token)

	var entity Session
	var createdAt string
	err := row.Scan(&entity.Token, &entity.AccountID, &entity.Email, &entity.Role, &createdAt)
	if err == sql.ErrNoRows {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, err
	}
	entity.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Session{}, fmt.Errorf("session created_at is malformed: %w", err)
	}
	return entity, nil
}

// Delete removes a Session by token.
// PRE: token is non-empty
// POST: Session with given token is removed; no-op if absent
func (s *SQLiteStore) Delete(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session WHERE token = ?", token)
	return err
}

// DeleteExpired removes all sessions created before the cutoff.
// PRE: before is a valid time
// POST: Stale sessions are removed
func (s *SQLiteStore) DeleteExpired(ctx context.Context, before time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM session WHERE created_at < ?", before.UTC().Format(time.RFC3339))
	return err
}
