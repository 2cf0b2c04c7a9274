package coltable

import (
	"bytes"
	"context"
	"io"
	"os"

	"golang.org/x/term"
)

const defaultTermWidth = 80

// detectTerminal reports whether w is a terminal and, if so, its current
// width in columns. A non-*os.File writer (a bytes.Buffer, a network
// connection, a pipe wrapped in a different type) is never a terminal,
// matching isatty()'s behavior of only ever answering for a real file
// descriptor.
func detectTerminal(w io.Writer) (isTerm bool, width int) {
	f, ok := w.(*os.File)
	if !ok {
		return false, 0
	}
	if !term.IsTerminal(int(f.Fd())) {
		return false, 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		width = defaultTermWidth
	}
	return true, width
}

// sizeScratchBuffer bounds the tree prefixer's per-row glyph budget at the
// larger of the terminal width or the longest single line's raw cell data,
// plus one: wide enough that a well-formed row's ancestry chain always
// fits, the same sizing the original computes once per scols_print_table
// call and reuses for every row.
func (t *Table) sizeScratchBuffer() *scratchBuffer {
	longest := 0
	for _, ln := range t.lines {
		sum := 0
		for _, c := range ln.cells {
			if c.hasData {
				sum += len(c.data)
			}
		}
		if sum > longest {
			longest = sum
		}
	}
	cap := t.termWidth
	if longest > cap {
		cap = longest
	}
	return &scratchBuffer{cap: cap + 1}
}

// Print writes tbl to w: solving column widths against w's terminal
// geometry (if any), then writing the header and every line in raw,
// export, flat, or tree form according to tbl's configured options.
//
// ctx is checked between rows (and, in tree mode, between each line and
// its children), not within the formatting of a single row: there is no
// suspension point inside formatCell to hand control back to the caller
// mid-write, the same contract the original library offers by not
// supporting cancellation at all. A canceled context simply stops the
// walk early and returns ctx.Err(); whatever was already written to w
// stays written.
func (t *Table) Print(ctx context.Context, w io.Writer) error {
	if t == nil {
		return ErrNilTable
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if t.symbols == nil {
		t.symbols = DefaultSymbols()
	}

	isTerm, width := detectTerminal(w)
	t.isTerm = isTerm
	t.termWidth = width
	if t.termWidth <= 0 {
		t.termWidth = defaultTermWidth
	}
	t.termWidth -= t.termReduce
	if t.termWidth < 0 {
		t.termWidth = 0
	}

	sb := t.sizeScratchBuffer()
	if !t.raw && !t.export {
		solve(t, sb)
	}

	if t.tree {
		return printTree(ctx, t, w, sb)
	}
	return printFlat(ctx, t, w, sb)
}

// Render runs Print into an in-memory buffer and returns the result as a
// string. Since a bytes.Buffer is never a terminal, this always lays out
// columns as if writing to a non-interactive pipe (natural width, no
// negotiation against a terminal size) -- mirroring the original's
// print-to-string entrypoint, which likewise has no terminal of its own to
// measure. Because no width is negotiated, WithTermReduce does not change
// the layout Render produces.
func (t *Table) Render(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	if err := t.Print(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
