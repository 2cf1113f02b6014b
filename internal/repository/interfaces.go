package repository

import (
	"context"

	"github.com/alexanderramin/shiftroster/internal/domain"
)

type RunRepo interface {
	Create(ctx context.Context, r *domain.ExtractionRun) error
	GetByID(ctx context.Context, id string) (*domain.ExtractionRun, error)
	List(ctx context.Context, limit int) ([]*domain.ExtractionRun, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleRepo interface {
	Save(ctx context.Context, runID string, s *domain.StaffSchedule) error
	ListByRun(ctx context.Context, runID string) (domain.ScheduleResult, error)
}

type WarningRepo interface {
	Create(ctx context.Context, runID string, seq int, w domain.Warning) error
	ListByRun(ctx context.Context, runID string) ([]domain.Warning, error)
}
