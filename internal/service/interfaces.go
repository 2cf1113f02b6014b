package service

import (
	"context"
	"errors"
	"io"

	"github.com/alexanderramin/shiftroster/internal/config"
	"github.com/alexanderramin/shiftroster/internal/domain"
	"github.com/alexanderramin/shiftroster/internal/extract"
	"github.com/alexanderramin/shiftroster/internal/roster"
)

// ErrHistoryDisabled is returned by run-history operations when the service
// was built without a database.
var ErrHistoryDisabled = errors.New("run history is disabled")

// ExtractorResolver picks the text extractor for an input file.
type ExtractorResolver func(path string) (extract.Extractor, error)

type ExtractRequest struct {
	Config config.Config
	// Stdout, when set, receives the JSON instead of Config.OutputPath.
	Stdout io.Writer
	// SkipHistory leaves the run out of the history database.
	SkipHistory bool
}

type ExtractResult struct {
	Run     *domain.ExtractionRun
	Outcome *roster.Outcome
	// Written is false when no staff matched and no artifact was produced.
	Written bool
}

type RosterService interface {
	Extract(ctx context.Context, req ExtractRequest) (*ExtractResult, error)
	ListRuns(ctx context.Context, limit int) ([]*domain.ExtractionRun, error)
	GetRun(ctx context.Context, id string) (*domain.RunDetail, error)
	DeleteRun(ctx context.Context, id string) error
}
