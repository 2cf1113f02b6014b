package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent, so the
// full list is replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS extraction_runs (
		id            TEXT PRIMARY KEY,
		source_path   TEXT NOT NULL,
		output_path   TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL
		              CHECK(status IN ('ok','empty')),
		staff_count   INTEGER NOT NULL DEFAULT 0,
		warning_count INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_runs_created ON extraction_runs(created_at)`,

	`CREATE TABLE IF NOT EXISTS staff_schedules (
		run_id     TEXT NOT NULL REFERENCES extraction_runs(id) ON DELETE CASCADE,
		staff_name TEXT NOT NULL,
		header     TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (run_id, staff_name)
	)`,

	`CREATE TABLE IF NOT EXISTS shift_entries (
		run_id     TEXT NOT NULL,
		staff_name TEXT NOT NULL,
		date_index INTEGER NOT NULL,
		code       TEXT NOT NULL,
		kind       TEXT NOT NULL
		           CHECK(kind IN ('status','composite','numeric')),
		PRIMARY KEY (run_id, staff_name, date_index),
		FOREIGN KEY (run_id, staff_name)
		           REFERENCES staff_schedules(run_id, staff_name) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS run_warnings (
		run_id     TEXT NOT NULL REFERENCES extraction_runs(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		staff_name TEXT NOT NULL,
		parsed     INTEGER NOT NULL,
		expected   INTEGER NOT NULL,
		line       INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (run_id, seq)
	)`,

	`ALTER TABLE extraction_runs ADD COLUMN target_names TEXT NOT NULL DEFAULT ''`,
}
