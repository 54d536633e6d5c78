// Package storage holds the adapters backing the roster dashboard's state.
// Roster collections (athletes, coaches, teams, schools) are deliberately
// memory-only: they are reseeded on every start and edits do not survive a
// restart. The single persisted surface is the session table, which plays
// the role the "is logged in" flag played in the original client — a login
// survives a restart, nothing else does.
package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the session database schema.
// PRE: db is a valid database connection
// POST: Session table is created, WAL mode enabled
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS session (
		token TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		email TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create session schema: %w", err)
	}
	return nil
}
