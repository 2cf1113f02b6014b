package roster

import (
	"testing"

	"github.com/alexanderramin/shiftroster/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStore_LastWriteWins(t *testing.T) {
	s := NewStore()
	assert.True(t, s.Empty())

	s.Put(&domain.StaffSchedule{Name: "HANI", Header: "first"})
	s.Put(&domain.StaffSchedule{Name: "AZAN", Header: "azan"})
	s.Put(&domain.StaffSchedule{Name: "HANI", Header: "second"})

	assert.Equal(t, 2, s.Len())
	got, ok := s.Get("HANI")
	assert.True(t, ok)
	assert.Equal(t, "second", got.Header)

	_, ok = s.Get("IRFAN")
	assert.False(t, ok)
	assert.Equal(t, []string{"AZAN", "HANI"}, s.Result().Names())
}
