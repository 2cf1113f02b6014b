package testutil

import (
	"strings"
	"time"

	"github.com/alexanderramin/shiftroster/internal/domain"
	"github.com/google/uuid"
)

// RosterCodes is a 36-slot row mixing every shift-code shape.
var RosterCodes = []string{
	"off", "39", "01", "39", "12", "02", "39", "12A3", "AL",
	"AL", "TR", "07", "07B1", "off", "TP", "MC", "TBD", "39",
	"39", "01", "01", "10C2", "off", "off", "39", "39", "01",
	"12", "02", "15D4", "MC", "39", "01", "39", "off", "20",
}

// RosterText renders extractor-style text with one two-line row per
// header. Each header is followed by the codes it maps to.
func RosterText(rows ...RosterRow) string {
	lines := []string{"NITORI CLINIC DUTY ROSTER", "NO NAME GENDER ID"}
	for _, r := range rows {
		lines = append(lines, r.Header, strings.Join(r.Codes, ""))
	}
	return strings.Join(lines, "\n") + "\n"
}

// RosterRow is one staff row as it appears in extracted text.
type RosterRow struct {
	Header string
	Codes  []string
}

// Run options
type RunOption func(*domain.ExtractionRun)

func WithRunStatus(s domain.RunStatus) RunOption {
	return func(r *domain.ExtractionRun) {
		r.Status = s
	}
}

func WithCreatedAt(t time.Time) RunOption {
	return func(r *domain.ExtractionRun) {
		r.CreatedAt = t
	}
}

func WithCounts(staff, warnings int) RunOption {
	return func(r *domain.ExtractionRun) {
		r.StaffCount = staff
		r.WarningCount = warnings
	}
}

func NewTestRun(source string, opts ...RunOption) *domain.ExtractionRun {
	r := &domain.ExtractionRun{
		ID:          uuid.New().String(),
		SourcePath:  source,
		OutputPath:  "out.json",
		TargetNames: []string{"AZAN", "HANI"},
		Status:      domain.RunOK,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestSchedule builds a schedule with codes laid onto consecutive dates
// starting at start.
func NewTestSchedule(name string, start int, codes []string) *domain.StaffSchedule {
	s := &domain.StaffSchedule{
		Name:   name,
		Header: "1 " + name,
		Shifts: make(map[int]domain.ShiftToken, len(codes)),
	}
	for i, c := range codes {
		s.Shifts[start+i] = domain.ShiftToken{Code: c, Kind: kindOf(c)}
	}
	return s
}

func kindOf(code string) domain.ShiftKind {
	switch {
	case len(code) == 4 && code[2] >= 'A' && code[2] <= 'D':
		return domain.ShiftComposite
	case len(code) == 2 && code[0] >= '0' && code[0] <= '9':
		return domain.ShiftNumeric
	default:
		return domain.ShiftStatus
	}
}
