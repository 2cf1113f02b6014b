package roster

import (
	"errors"

	"github.com/alexanderramin/shiftroster/internal/config"
	"github.com/alexanderramin/shiftroster/internal/domain"
)

// Outcome is everything one pass over a document's text produced.
type Outcome struct {
	Result   domain.ScheduleResult
	Warnings []domain.Warning
	// Windows counts the line windows in which a target name was isolated.
	Windows int
}

// Empty reports whether no staff member produced a complete schedule.
func (o *Outcome) Empty() bool {
	return len(o.Result) == 0
}

// Parse runs the full extraction chain over text for the configured staff.
func Parse(cfg config.Config, text string) *Outcome {
	dates := cfg.DateSequence()
	store := NewStore()
	out := &Outcome{}

	matches := LocateHeaders(NormalizeLines(text), cfg.TargetNames)
	out.Windows = len(matches)

	for _, m := range matches {
		tokens := Tokenize(m.Blob, len(dates))
		sched, err := Assemble(m, tokens, dates)
		if err != nil {
			var short *ShortRosterError
			if errors.As(err, &short) {
				out.Warnings = append(out.Warnings, domain.Warning{
					Staff:    short.Name,
					Parsed:   short.Parsed,
					Expected: short.Expected,
					Line:     m.Line,
				})
			}
			continue
		}
		store.Put(sched)
	}

	out.Result = store.Result()
	return out
}
