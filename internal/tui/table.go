// Package tui provides terminal user interface components for coltable.
package tui

import (
	"context"

	coltable "github.com/mrz1836/coltable"
)

// RenderRows lays out headers and rows through the coltable engine and
// returns the rendered text. This is the thin bridge Output.Table
// implementations use: callers pass plain string grids and get back the
// same column layout/width negotiation the render command uses, without
// touching the engine API directly. opts are forwarded to coltable.NewTable
// unchanged, so a caller can request raw/export/color/symbol variants.
func RenderRows(headers []string, rows [][]string, opts ...coltable.TableOption) (string, error) {
	if len(headers) == 0 {
		return "", nil
	}

	tbl := coltable.NewTable(opts...)
	for _, h := range headers {
		tbl.NewColumn(h, coltable.Fraction(0))
	}

	for _, row := range rows {
		ln := tbl.NewLine(nil)
		for i := range headers {
			if i < len(row) {
				ln.SetCell(i, row[i])
			}
		}
	}

	return tbl.Render(context.Background())
}
