package coltable

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// resolveColor picks the color that applies to one cell, following the
// precedence cell > line > column: a color set directly on the cell wins,
// then the line's default, then the column's default.
func resolveColor(ce *Cell, ln *Line, col *Column) (string, bool) {
	if ce != nil {
		if c, ok := ce.Color(); ok {
			return c, true
		}
	}
	if ln != nil {
		if c, ok := ln.Color(); ok {
			return c, true
		}
	}
	return col.Color()
}

func writeColored(w io.Writer, s, color string, hasColor bool) error {
	if hasColor && color != "" {
		styled := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
		_, err := io.WriteString(w, styled)
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func padLeft(s string, totalWidth, displayWidth int) string {
	if displayWidth >= totalWidth {
		return s
	}
	return strings.Repeat(" ", totalWidth-displayWidth) + s
}

// formatCell writes one column's rendering of one row to w: data for ce
// (hasData indicates whether it is present at all) in the mode tbl is
// configured for.
//
// Raw and export modes bypass measurement and layout entirely: raw writes
// fields space-separated with NUL bytes stripped, export writes
// HEADER="value" shell-quoted pairs. Only human mode (the default) applies
// the solved column width: truncation, alignment, padding, and either a
// single separator space or, if an untruncatable value overflows its
// column, a newline followed by a continuation indent of width+1 for every
// column up to and including this one, so the next column's cell starts
// under that column's own position.
func formatCell(tbl *Table, col *Column, ln *Line, ce *Cell, data string, hasData bool, w io.Writer) error {
	isLast := col.seqnum == len(tbl.columns)-1

	if tbl.raw {
		if !hasData {
			data = ""
		}
		if err := fputsNonblank(w, data); err != nil {
			return err
		}
		if !isLast {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		return nil
	}

	if tbl.export {
		if !hasData {
			data = ""
		}
		header := col.HeaderText()
		if _, err := io.WriteString(w, header+"="); err != nil {
			return err
		}
		if err := fputsQuoted(w, data); err != nil {
			return err
		}
		if !isLast {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		return nil
	}

	var color string
	var hasColor bool
	if tbl.colorsWanted {
		color, hasColor = resolveColor(ce, ln, col)
	}

	present := hasData
	if !present {
		data = ""
	}
	dataLen := 0
	if present {
		encoded, mw := safeEncode(data)
		if !mw.ok {
			present = false
			data = ""
		} else {
			data = encoded
			dataLen = mw.n
		}
	}

	width := col.width
	if isLast && dataLen < width && !tbl.maxOut {
		width = dataLen
	}

	if present && dataLen > width && col.trunc {
		truncated, tmw := truncate(data, width)
		if !tmw.ok {
			present = false
			data = ""
			dataLen = 0
		} else {
			data = truncated
			dataLen = tmw.n
			width = tmw.n
		}
	}

	if present {
		if col.rightAlign {
			xw := col.width
			if err := writeColored(w, padLeft(data, xw, dataLen), color, hasColor); err != nil {
				return err
			}
			if dataLen < xw {
				dataLen = xw
			}
		} else if err := writeColored(w, data, color, hasColor); err != nil {
			return err
		}
	}

	if dataLen < width {
		if _, err := io.WriteString(w, strings.Repeat(" ", width-dataLen)); err != nil {
			return err
		}
	}

	if !isLast {
		if dataLen > width && !col.trunc {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			for i := 0; i <= col.seqnum; i++ {
				x := tbl.columns[i]
				if _, err := io.WriteString(w, strings.Repeat(" ", x.width+1)); err != nil {
					return err
				}
			}
		} else if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
	}
	return nil
}
