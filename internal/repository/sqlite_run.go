package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/shiftroster/internal/db"
	"github.com/alexanderramin/shiftroster/internal/domain"
)

// SQLiteRunRepo implements RunRepo using a SQLite database.
type SQLiteRunRepo struct {
	db db.DBTX
}

func NewSQLiteRunRepo(conn db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: conn}
}

const runColumns = `id, source_path, output_path, target_names, status, staff_count, warning_count, created_at`

func (r *SQLiteRunRepo) Create(ctx context.Context, run *domain.ExtractionRun) error {
	query := `INSERT INTO extraction_runs (` + runColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.SourcePath,
		run.OutputPath,
		joinNames(run.TargetNames),
		string(run.Status),
		run.StaffCount,
		run.WarningCount,
		formatTime(run.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting extraction run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*domain.ExtractionRun, error) {
	query := `SELECT ` + runColumns + ` FROM extraction_runs WHERE id = ?`
	run, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("extraction run %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return run, nil
}

// List returns the most recent runs first. A non-positive limit returns all runs.
func (r *SQLiteRunRepo) List(ctx context.Context, limit int) ([]*domain.ExtractionRun, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT ` + runColumns + ` FROM extraction_runs
		ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing extraction runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.ExtractionRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating extraction runs: %w", err)
	}
	return runs, nil
}

func (r *SQLiteRunRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM extraction_runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting extraction run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting extraction run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("extraction run %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.ExtractionRun, error) {
	var (
		run           domain.ExtractionRun
		names, status string
		createdAtStr  string
	)
	err := row.Scan(
		&run.ID, &run.SourcePath, &run.OutputPath, &names, &status,
		&run.StaffCount, &run.WarningCount, &createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning extraction run: %w", err)
	}

	run.TargetNames = splitNames(names)
	run.Status = domain.RunStatus(status)
	run.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &run, nil
}
