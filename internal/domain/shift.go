package domain

import (
	"encoding/json"
	"sort"
)

// ShiftToken is one decoded unit of a staff member's roster row.
type ShiftToken struct {
	Code string
	Kind ShiftKind
}

// MarshalJSON emits the bare shift code; the kind is an in-process detail.
func (t ShiftToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Code)
}

// UnmarshalJSON accepts the bare code form written by MarshalJSON.
// Kind is left empty since it is not carried in the artifact.
func (t *ShiftToken) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.Code)
}

func (t ShiftToken) String() string {
	return t.Code
}

// HeaderMatch is a staff name located inside a two-line window, together
// with the header text that precedes it and the undelimited shift blob
// that follows it.
type HeaderMatch struct {
	Name   string
	Header string
	Blob   string
	Line   int
}

// StaffSchedule is one staff member's complete roster keyed by date index.
type StaffSchedule struct {
	Name   string             `json:"-"`
	Header string             `json:"header"`
	Shifts map[int]ShiftToken `json:"shifts"`
}

// Len returns the number of dated shifts.
func (s *StaffSchedule) Len() int {
	return len(s.Shifts)
}

// Dates returns the schedule's date indexes in ascending order.
func (s *StaffSchedule) Dates() []int {
	dates := make([]int, 0, len(s.Shifts))
	for d := range s.Shifts {
		dates = append(dates, d)
	}
	sort.Ints(dates)
	return dates
}

// ScheduleResult maps staff names to their schedules.
type ScheduleResult map[string]*StaffSchedule

// Names returns the staff names in the result, sorted.
func (r ScheduleResult) Names() []string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
