package coltable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 4: root r with children c1 (not last), c2 (last); c2 has a
// single child g. Expect g's rendered tree cell to be "  └─g": c2 (g's
// parent) is the last child of r, so its ancestry glyph is "  "; g is the
// only (hence last) child of c2, so its own connector is "└─".
func TestBuildTreeCellScenario4(t *testing.T) {
	tbl := NewTable(WithTree())
	tbl.symbols = &Symbols{Vert: "│ ", Branch: "├─", Right: "└─"}
	tbl.NewColumn("NAME", Fraction(0), TreeColumn())
	tbl.NewColumn("SIZE", Fraction(0))

	root := tbl.NewLine(nil)
	root.SetCell(0, "r")
	c1 := tbl.NewLine(root)
	c1.SetCell(0, "c1")
	c2 := tbl.NewLine(root)
	c2.SetCell(0, "c2")
	g := tbl.NewLine(c2)
	g.SetCell(0, "g")

	sb := &scratchBuffer{cap: 1024}

	rootCell, ok := buildTreeCell(tbl, root, "r", sb)
	require.True(t, ok)
	assert.Equal(t, "r", rootCell)

	c1Cell, ok := buildTreeCell(tbl, c1, "c1", sb)
	require.True(t, ok)
	assert.Equal(t, "├─c1", c1Cell)

	c2Cell, ok := buildTreeCell(tbl, c2, "c2", sb)
	require.True(t, ok)
	assert.Equal(t, "└─c2", c2Cell)

	gCell, ok := buildTreeCell(tbl, g, "g", sb)
	require.True(t, ok)
	assert.Equal(t, "  └─g", gCell)
}

func TestAncestorPrefixOverflowYieldsAbsent(t *testing.T) {
	tbl := NewTable(WithTree())
	tbl.symbols = DefaultSymbols()
	tbl.NewColumn("NAME", Fraction(0), TreeColumn())

	root := tbl.NewLine(nil)
	mid := tbl.NewLine(root)
	leaf := tbl.NewLine(mid)
	leaf.SetCell(0, "leaf")

	sb := &scratchBuffer{cap: 0}
	_, ok := buildTreeCell(tbl, leaf, "leaf", sb)
	assert.False(t, ok)
}

func TestIsLastChildForRootIsTrue(t *testing.T) {
	tbl := NewTable()
	tbl.NewColumn("A", Fraction(0))
	root := tbl.NewLine(nil)
	assert.True(t, isLastChild(tbl, root.idx))
}
