package coltable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureColumnFloorsToHeaderWidth(t *testing.T) {
	tbl := NewTable()
	col := tbl.NewColumn("IDENTIFIER", Fraction(0))
	ln := tbl.NewLine(nil)
	ln.SetCell(0, "x")

	measureColumn(tbl, col, &scratchBuffer{cap: 1024})

	assert.Equal(t, len("IDENTIFIER"), col.widthMin)
	assert.Equal(t, len("IDENTIFIER"), col.width)
}

func TestMeasureColumnStrictWidthSkipsFloor(t *testing.T) {
	tbl := NewTable()
	col := tbl.NewColumn("IDENTIFIER", Fraction(0), StrictWidth())
	ln := tbl.NewLine(nil)
	ln.SetCell(0, "x")

	measureColumn(tbl, col, &scratchBuffer{cap: 1024})

	assert.Equal(t, 1, col.width)
}

func TestMeasureColumnAbsoluteHintBumpsWidth(t *testing.T) {
	tbl := NewTable()
	col := tbl.NewColumn("N", Absolute(12))
	ln := tbl.NewLine(nil)
	ln.SetCell(0, "ab")

	measureColumn(tbl, col, &scratchBuffer{cap: 1024})

	assert.Equal(t, 12, col.width)
}

// Scenario 6: a no-extremes column with widths {3,3,3,3,30} flags extreme
// on the first pass and ignores the outlier on the second.
func TestMeasureColumnExtremeSuppression(t *testing.T) {
	tbl := NewTable()
	col := tbl.NewColumn("", Fraction(0), NoExtremes())
	for _, v := range []string{"aaa", "bbb", "ccc", "ddd", "eeeeeeeeeeeeeeeeeeeeeeeeeeeeee"} {
		ln := tbl.NewLine(nil)
		ln.SetCell(0, v)
	}
	sb := &scratchBuffer{cap: 1024}

	measureColumn(tbl, col, sb)
	require.True(t, col.isExtreme)
	assert.Equal(t, 30, col.widthMax)
	assert.Equal(t, 8, col.widthAvg) // (3+3+3+3+30)/5 = 8 (integer division)
	assert.Equal(t, 30, col.width)

	measureColumn(tbl, col, sb)
	assert.Equal(t, 3, col.width, "second pass ignores the 30-wide outlier")
	assert.Equal(t, 8, col.widthAvg, "widthAvg is not recomputed once non-zero")
}

func TestMeasureColumnTreeCellUsesAncestryPrefix(t *testing.T) {
	tbl := NewTable()
	tbl.symbols = DefaultSymbols()
	col := tbl.NewColumn("NAME", Fraction(0), TreeColumn())
	root := tbl.NewLine(nil)
	root.SetCell(0, "r")
	child := tbl.NewLine(root)
	child.SetCell(0, "c")

	sb := &scratchBuffer{cap: 1024}
	measureColumn(tbl, col, sb)

	// "└─c" is 3 cells wide (the glyph is single-width in this measurement,
	// only its display form differs); the root's own cell is 1 wide, so the
	// column's natural width is driven by the child.
	data, ok := lineGetData(tbl, child, col, sb)
	require.True(t, ok)
	assert.Equal(t, tbl.symbols.Right+"c", data)
}
