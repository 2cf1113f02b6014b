package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderTable_PadsToWidestCell(t *testing.T) {
	got := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"long", "x"}, {"s"}}))

	want := "A     B\n" +
		"────  ─\n" +
		"long  x\n" +
		"s     \n"
	assert.Equal(t, want, got)
}

func TestRenderTable_StyledCellsMeasuredVisibly(t *testing.T) {
	got := stripANSI(RenderTable([]string{"K", "V"}, [][]string{{StyleRed.Render("ab"), "1"}}))
	assert.Equal(t, "K   V\n──  ─\nab  1\n", got)
}
