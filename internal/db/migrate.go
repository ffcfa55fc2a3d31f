package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// duplicate-column errors from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Single-row key/value store holding the serialized ledger snapshot
	// under the 'ledger' key. The snapshot is a JSON object overlaid onto
	// defaults on load, so schema growth never needs a table migration.
	`CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS attempts (
		id           TEXT PRIMARY KEY,
		lesson_id    TEXT NOT NULL,
		title        TEXT NOT NULL,
		xp           INTEGER NOT NULL DEFAULT 0,
		gems         INTEGER NOT NULL DEFAULT 0,
		correct      INTEGER NOT NULL DEFAULT 0,
		wrong        INTEGER NOT NULL DEFAULT 0,
		practice     INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_attempts_completed ON attempts(completed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_attempts_lesson ON attempts(lesson_id)`,
}
