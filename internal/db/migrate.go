package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS check_ins (
		id         TEXT PRIMARY KEY,
		method     TEXT NOT NULL
		           CHECK(method IN ('assessment','named')),
		stress     INTEGER,
		overwhelm  INTEGER,
		anger      INTEGER,
		sadness    INTEGER,
		source     TEXT NOT NULL,
		goal       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_check_ins_created ON check_ins(created_at)`,

	`CREATE TABLE IF NOT EXISTS check_in_steps (
		check_in_id TEXT NOT NULL REFERENCES check_ins(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		emotion     TEXT NOT NULL,
		PRIMARY KEY (check_in_id, position)
	)`,
}
