package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRowsEmptyHeaders(t *testing.T) {
	out, err := RenderRows(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderRowsIncludesHeaderAndCells(t *testing.T) {
	out, err := RenderRows([]string{"NAME", "WIDTH"}, [][]string{
		{"one", "10"},
		{"two", "20"},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "WIDTH")
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "10")
	assert.Contains(t, out, "two")
	assert.Contains(t, out, "20")
}

func TestRenderRowsShortRowLeavesBlankCell(t *testing.T) {
	out, err := RenderRows([]string{"A", "B"}, [][]string{{"x"}})
	require.NoError(t, err)
	assert.Contains(t, out, "x")
}
