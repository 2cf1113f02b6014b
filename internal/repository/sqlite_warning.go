package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/shiftroster/internal/db"
	"github.com/alexanderramin/shiftroster/internal/domain"
)

// SQLiteWarningRepo implements WarningRepo using a SQLite database.
type SQLiteWarningRepo struct {
	db db.DBTX
}

func NewSQLiteWarningRepo(conn db.DBTX) *SQLiteWarningRepo {
	return &SQLiteWarningRepo{db: conn}
}

func (r *SQLiteWarningRepo) Create(ctx context.Context, runID string, seq int, w domain.Warning) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO run_warnings (run_id, seq, staff_name, parsed, expected, line) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, seq, w.Staff, w.Parsed, w.Expected, w.Line)
	if err != nil {
		return fmt.Errorf("inserting warning: %w", err)
	}
	return nil
}

func (r *SQLiteWarningRepo) ListByRun(ctx context.Context, runID string) ([]domain.Warning, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT staff_name, parsed, expected, line FROM run_warnings WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing warnings: %w", err)
	}
	defer rows.Close()

	var warnings []domain.Warning
	for rows.Next() {
		var w domain.Warning
		if err := rows.Scan(&w.Staff, &w.Parsed, &w.Expected, &w.Line); err != nil {
			return nil, fmt.Errorf("scanning warning row: %w", err)
		}
		warnings = append(warnings, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating warnings: %w", err)
	}
	return warnings, nil
}
