package roster

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/shiftroster/internal/domain"
)

// ErrShortRoster is matched by every *ShortRosterError.
var ErrShortRoster = errors.New("short roster")

// ShortRosterError reports a staff row that decoded to fewer tokens than
// there are date slots.
type ShortRosterError struct {
	Name     string
	Parsed   int
	Expected int
}

func (e *ShortRosterError) Error() string {
	return fmt.Sprintf("%s: only %d of %d shifts parsed", e.Name, e.Parsed, e.Expected)
}

func (e *ShortRosterError) Is(target error) bool {
	return target == ErrShortRoster
}

// Assemble zips tokens positionally onto dates. Anything other than exactly
// one token per date is rejected; a short row is never padded.
func Assemble(m domain.HeaderMatch, tokens []domain.ShiftToken, dates []int) (*domain.StaffSchedule, error) {
	if len(tokens) < len(dates) {
		return nil, &ShortRosterError{Name: m.Name, Parsed: len(tokens), Expected: len(dates)}
	}
	if len(tokens) > len(dates) {
		return nil, fmt.Errorf("%s: %d tokens for %d dates", m.Name, len(tokens), len(dates))
	}

	shifts := make(map[int]domain.ShiftToken, len(dates))
	for i, d := range dates {
		shifts[d] = tokens[i]
	}
	return &domain.StaffSchedule{
		Name:   m.Name,
		Header: m.Header,
		Shifts: shifts,
	}, nil
}
