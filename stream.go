package coltable

import (
	"context"
	"fmt"
	"io"
)

// printHeader writes the header row, unless headings are suppressed,
// export mode is active (export mode has no header row; every line
// carries its own headers), or the table has no lines at all (matching
// the original: an empty table prints nothing, not even a header).
func printHeader(tbl *Table, w io.Writer) error {
	if tbl.noHeadings || tbl.export || len(tbl.lines) == 0 {
		return nil
	}
	for _, col := range tbl.columns {
		text, hasData := col.header.Data()
		if err := formatCell(tbl, col, nil, &col.header, text, hasData, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// printLineRow writes every column's cell for ln. If the tree column's
// ancestry prefix overran the scratch buffer and, as a result, every column
// in the row ends up with nothing to print, the row is a total loss rather
// than a single absent cell, and ErrScratchBufferExhausted surfaces instead
// of silently writing a blank line.
func printLineRow(tbl *Table, ln *Line, w io.Writer, sb *scratchBuffer) error {
	rendered := false
	overflowed := false
	for _, col := range tbl.columns {
		ce := ln.cellAt(col.seqnum)
		data, hasData := lineGetData(tbl, ln, col, sb)
		switch {
		case hasData:
			rendered = true
		case col.tree && ce != nil && ce.hasData:
			overflowed = true
		}
		if err := formatCell(tbl, col, ln, ce, data, hasData, w); err != nil {
			return err
		}
	}
	if overflowed && !rendered {
		return fmt.Errorf("%w: line %d", ErrScratchBufferExhausted, ln.idx)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// printFlat writes the header followed by every line in table order,
// ignoring the parent/child forest structure entirely.
func printFlat(ctx context.Context, tbl *Table, w io.Writer, sb *scratchBuffer) error {
	if err := printHeader(tbl, w); err != nil {
		return err
	}
	for _, ln := range tbl.lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := printLineRow(tbl, ln, w, sb); err != nil {
			return err
		}
	}
	return nil
}

func printTreeLine(ctx context.Context, tbl *Table, ln *Line, w io.Writer, sb *scratchBuffer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := printLineRow(tbl, ln, w, sb); err != nil {
		return err
	}
	for _, childIdx := range ln.children {
		if err := printTreeLine(ctx, tbl, tbl.lines[childIdx], w, sb); err != nil {
			return err
		}
	}
	return nil
}

// printTree writes the header followed by every root line, recursing
// depth-first into each root's descendants.
func printTree(ctx context.Context, tbl *Table, w io.Writer, sb *scratchBuffer) error {
	if err := printHeader(tbl, w); err != nil {
		return err
	}
	for _, ln := range tbl.lines {
		if ln.parent != noParent {
			continue
		}
		if err := printTreeLine(ctx, tbl, ln, w, sb); err != nil {
			return err
		}
	}
	return nil
}
