package coltable

import "strings"

// isLastChild reports whether the line at idx is the last child appended
// to its parent (or is a root, in which case the question does not apply
// and true is returned so callers default to the "no vertical continuation
// needed" glyph).
func isLastChild(tbl *Table, idx int) bool {
	ln := tbl.lines[idx]
	if ln.parent == noParent {
		return true
	}
	parent := tbl.lines[ln.parent]
	if len(parent.children) == 0 {
		return true
	}
	return parent.children[len(parent.children)-1] == idx
}

// ancestorPrefix builds the vertical-continuation glyphs for every
// ancestor of ln below the forest root, down to and including ln's own
// parent, read root-downward. It walks the parent chain iteratively rather than
// recursively (an arena-indexed line forest can be arbitrarily deep, and
// there is no reason to grow the Go call stack one frame per generation
// just to reverse a list), collecting ancestor indices child-to-root and
// then reversing before emitting glyphs root-to-child.
func ancestorPrefix(tbl *Table, ln *Line, sb *scratchBuffer) (string, bool) {
	var chain []int
	for cur := ln.parent; cur != noParent; cur = tbl.lines[cur].parent {
		if tbl.lines[cur].parent == noParent {
			// cur is itself a root: it contributes no glyph, and
			// nothing above it does either.
			break
		}
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	var b strings.Builder
	used := 0
	for _, idx := range chain {
		glyph := tbl.symbols.Vert
		if isLastChild(tbl, idx) {
			glyph = "  "
		}
		if !sb.fits(used, len(glyph)) {
			return "", false
		}
		b.WriteString(glyph)
		used += len(glyph)
	}
	return b.String(), true
}

// buildTreeCell assembles the tree column's text for ln: its ancestors'
// vertical-continuation glyphs, its own branch connector, and data. A root
// line gets no prefix at all. ok is false only when the scratch buffer
// could not hold the ancestry chain, in which case the caller should treat
// the cell as absent for this render.
func buildTreeCell(tbl *Table, ln *Line, data string, sb *scratchBuffer) (string, bool) {
	if ln.parent == noParent {
		return data, true
	}

	prefix, ok := ancestorPrefix(tbl, ln, sb)
	if !ok {
		return "", false
	}

	own := tbl.symbols.Branch
	if isLastChild(tbl, ln.idx) {
		own = tbl.symbols.Right
	}
	return prefix + own + data, true
}

// lineGetData resolves the text col should render for ln: the raw cell
// value for an ordinary column, or the assembled ancestry-prefixed value
// for the tree column. ok is false when the cell has no data at all, or
// when tree assembly overran the scratch buffer; either way the cell
// should be treated as absent.
func lineGetData(tbl *Table, ln *Line, col *Column, sb *scratchBuffer) (string, bool) {
	ce := ln.cellAt(col.seqnum)
	if ce == nil || !ce.hasData {
		return "", false
	}
	if !col.tree {
		return ce.data, true
	}
	return buildTreeCell(tbl, ln, ce.data, sb)
}
