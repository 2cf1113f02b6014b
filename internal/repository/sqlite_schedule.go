package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/shiftroster/internal/db"
	"github.com/alexanderramin/shiftroster/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db db.DBTX
}

func NewSQLiteScheduleRepo(conn db.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

// Save writes a staff schedule and all of its dated shifts. Run it inside a
// UnitOfWork so a partial schedule is never left behind.
func (r *SQLiteScheduleRepo) Save(ctx context.Context, runID string, s *domain.StaffSchedule) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO staff_schedules (run_id, staff_name, header) VALUES (?, ?, ?)`,
		runID, s.Name, s.Header)
	if err != nil {
		return fmt.Errorf("inserting schedule for %s: %w", s.Name, err)
	}

	for _, d := range s.Dates() {
		tok := s.Shifts[d]
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO shift_entries (run_id, staff_name, date_index, code, kind) VALUES (?, ?, ?, ?, ?)`,
			runID, s.Name, d, tok.Code, string(tok.Kind))
		if err != nil {
			return fmt.Errorf("inserting shift %d for %s: %w", d, s.Name, err)
		}
	}
	return nil
}

func (r *SQLiteScheduleRepo) ListByRun(ctx context.Context, runID string) (domain.ScheduleResult, error) {
	result := make(domain.ScheduleResult)

	rows, err := r.db.QueryContext(ctx,
		`SELECT staff_name, header FROM staff_schedules WHERE run_id = ? ORDER BY staff_name`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	for rows.Next() {
		s := &domain.StaffSchedule{Shifts: make(map[int]domain.ShiftToken)}
		if err := rows.Scan(&s.Name, &s.Header); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning schedule row: %w", err)
		}
		result[s.Name] = s
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}
	rows.Close()

	shifts, err := r.db.QueryContext(ctx,
		`SELECT staff_name, date_index, code, kind FROM shift_entries WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing shifts: %w", err)
	}
	defer shifts.Close()
	for shifts.Next() {
		var (
			name, code, kind string
			date             int
		)
		if err := shifts.Scan(&name, &date, &code, &kind); err != nil {
			return nil, fmt.Errorf("scanning shift row: %w", err)
		}
		if s, ok := result[name]; ok {
			s.Shifts[date] = domain.ShiftToken{Code: code, Kind: domain.ShiftKind(kind)}
		}
	}
	if err := shifts.Err(); err != nil {
		return nil, fmt.Errorf("iterating shifts: %w", err)
	}
	return result, nil
}
