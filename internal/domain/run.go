package domain

import (
	"fmt"
	"time"
)

// ExtractionRun records one invocation of the extractor against a document.
type ExtractionRun struct {
	ID           string
	SourcePath   string
	OutputPath   string
	TargetNames  []string
	Status       RunStatus
	StaffCount   int
	WarningCount int
	CreatedAt    time.Time
}

// Warning is a non-fatal per-staff diagnostic raised while assembling a roster.
type Warning struct {
	Staff    string
	Parsed   int
	Expected int
	Line     int
}

func (w Warning) Message() string {
	return fmt.Sprintf("skipping %s: only %d of %d shifts parsed", w.Staff, w.Parsed, w.Expected)
}

// RunDetail bundles a run with everything recorded for it.
type RunDetail struct {
	Run       *ExtractionRun
	Schedules ScheduleResult
	Warnings  []Warning
}
