package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/alexanderramin/shiftroster/internal/config"
	"github.com/alexanderramin/shiftroster/internal/db"
	"github.com/alexanderramin/shiftroster/internal/domain"
	"github.com/alexanderramin/shiftroster/internal/extract"
	"github.com/alexanderramin/shiftroster/internal/output"
	"github.com/alexanderramin/shiftroster/internal/repository"
	"github.com/alexanderramin/shiftroster/internal/roster"
	"github.com/google/uuid"
)

// StdoutPath is recorded as the output path of runs written to stdout.
const StdoutPath = "-"

type rosterService struct {
	resolve   ExtractorResolver
	runs      repository.RunRepo
	schedules repository.ScheduleRepo
	warnings  repository.WarningRepo
	uow       db.UnitOfWork
	logger    *slog.Logger
	observer  UseCaseObserver
}

// NewRosterService wires the extraction pipeline. The repositories and uow
// may all be nil, in which case runs are not recorded and the history
// operations return ErrHistoryDisabled.
func NewRosterService(
	resolve ExtractorResolver,
	runs repository.RunRepo,
	schedules repository.ScheduleRepo,
	warnings repository.WarningRepo,
	uow db.UnitOfWork,
	logger *slog.Logger,
	observers ...UseCaseObserver,
) RosterService {
	if resolve == nil {
		resolve = extract.ForPath
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &rosterService{
		resolve:   resolve,
		runs:      runs,
		schedules: schedules,
		warnings:  warnings,
		uow:       uow,
		logger:    logger,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *rosterService) historyEnabled() bool {
	return s.uow != nil && s.runs != nil
}

func (s *rosterService) Extract(ctx context.Context, req ExtractRequest) (result *ExtractResult, err error) {
	startedAt := time.Now().UTC()
	cfg := req.Config
	fields := map[string]any{"source": cfg.InputPath}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "extract-roster",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = config.FormatErrors(cfg.Validate()); err != nil {
		return nil, err
	}
	if cfg.InputPath == "" {
		return nil, fmt.Errorf("input file is required")
	}

	var ex extract.Extractor
	ex, err = s.resolve(cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", cfg.InputPath, err)
	}
	var text string
	text, err = ex.Extract(ctx, cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", cfg.InputPath, err)
	}

	outcome := roster.Parse(cfg, text)
	for _, w := range outcome.Warnings {
		s.logger.WarnContext(ctx, w.Message(),
			"staff", w.Staff, "parsed", w.Parsed, "expected", w.Expected, "line", w.Line)
	}

	run := &domain.ExtractionRun{
		ID:           uuid.New().String(),
		SourcePath:   cfg.InputPath,
		TargetNames:  cfg.TargetNames,
		Status:       domain.RunOK,
		StaffCount:   len(outcome.Result),
		WarningCount: len(outcome.Warnings),
		CreatedAt:    startedAt,
	}
	result = &ExtractResult{Run: run, Outcome: outcome}
	fields["staff_count"] = run.StaffCount
	fields["warning_count"] = run.WarningCount

	if outcome.Empty() {
		run.Status = domain.RunEmpty
		s.logger.WarnContext(ctx, "no matching staff data found",
			"source", cfg.InputPath, "windows", outcome.Windows)
	} else {
		run.OutputPath, err = s.write(ctx, req, outcome.Result)
		if err != nil {
			return nil, err
		}
		result.Written = true
		s.logger.InfoContext(ctx, "saved schedule", "path", run.OutputPath, "staff", run.StaffCount)
	}

	if req.SkipHistory || !s.historyEnabled() {
		return result, nil
	}
	if err = s.record(ctx, run, outcome); err != nil {
		return nil, fmt.Errorf("recording run: %w", err)
	}
	fields["run_id"] = run.ID
	return result, nil
}

func (s *rosterService) write(ctx context.Context, req ExtractRequest, result domain.ScheduleResult) (string, error) {
	if req.Stdout != nil {
		if err := output.Encode(req.Stdout, result); err != nil {
			return "", err
		}
		return StdoutPath, nil
	}

	path := req.Config.OutputPath
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if err := output.WriteJSON(ctx, path, result); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// record persists the run, its schedules and its warnings atomically.
func (s *rosterService) record(ctx context.Context, run *domain.ExtractionRun, outcome *roster.Outcome) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRuns := repository.NewSQLiteRunRepo(tx)
		txSchedules := repository.NewSQLiteScheduleRepo(tx)
		txWarnings := repository.NewSQLiteWarningRepo(tx)

		if err := txRuns.Create(ctx, run); err != nil {
			return err
		}
		for _, name := range outcome.Result.Names() {
			if err := txSchedules.Save(ctx, run.ID, outcome.Result[name]); err != nil {
				return err
			}
		}
		for i, w := range outcome.Warnings {
			if err := txWarnings.Create(ctx, run.ID, i, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *rosterService) ListRuns(ctx context.Context, limit int) ([]*domain.ExtractionRun, error) {
	if !s.historyEnabled() {
		return nil, ErrHistoryDisabled
	}
	return s.runs.List(ctx, limit)
}

func (s *rosterService) GetRun(ctx context.Context, id string) (*domain.RunDetail, error) {
	if !s.historyEnabled() {
		return nil, ErrHistoryDisabled
	}
	run, err := s.runs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	schedules, err := s.schedules.ListByRun(ctx, id)
	if err != nil {
		return nil, err
	}
	warnings, err := s.warnings.ListByRun(ctx, id)
	if err != nil {
		return nil, err
	}
	return &domain.RunDetail{Run: run, Schedules: schedules, Warnings: warnings}, nil
}

func (s *rosterService) DeleteRun(ctx context.Context, id string) error {
	if !s.historyEnabled() {
		return ErrHistoryDisabled
	}
	return s.runs.Delete(ctx, id)
}
