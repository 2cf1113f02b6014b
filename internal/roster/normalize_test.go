package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLines(t *testing.T) {
	text := "  NITORI ROSTER  \n\n\t1 AZAN\r\noff3901\r   \n  \nlast"
	assert.Equal(t, []string{"NITORI ROSTER", "1 AZAN", "off3901", "last"}, NormalizeLines(text))
}

func TestNormalizeLines_Empty(t *testing.T) {
	assert.Empty(t, NormalizeLines(""))
	assert.Empty(t, NormalizeLines(" \n\t\n  "))
}
