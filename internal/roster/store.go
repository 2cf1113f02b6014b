package roster

import "github.com/alexanderramin/shiftroster/internal/domain"

// Store accumulates complete schedules keyed by staff name. A later schedule
// for the same name replaces the earlier one.
type Store struct {
	result domain.ScheduleResult
}

func NewStore() *Store {
	return &Store{result: make(domain.ScheduleResult)}
}

func (s *Store) Put(schedule *domain.StaffSchedule) {
	s.result[schedule.Name] = schedule
}

func (s *Store) Get(name string) (*domain.StaffSchedule, bool) {
	sched, ok := s.result[name]
	return sched, ok
}

func (s *Store) Len() int {
	return len(s.result)
}

func (s *Store) Empty() bool {
	return len(s.result) == 0
}

// Result returns the accumulated mapping. The store must not be used afterwards.
func (s *Store) Result() domain.ScheduleResult {
	return s.result
}
