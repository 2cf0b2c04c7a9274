package coltable

// scratchBuffer bounds the total number of bytes the tree prefixer may
// spend on ancestry glyphs for one line, mirroring the fixed-size scratch
// buffer the original implementation sizes once per call and reuses for
// every row. Rather than pre-allocating and writing into it byte-by-byte,
// the Go port only needs the bound itself, since strings.Builder already
// grows safely; scratchBuffer's job is solely to reproduce the original's
// "give up and treat the cell as absent" behavior once a row's ancestry
// chain would have overrun that bound.
type scratchBuffer struct {
	cap int
}

func (b *scratchBuffer) fits(used, add int) bool {
	return used+add <= b.cap
}

// measureColumn computes col's content-driven width fields (width,
// widthMin, widthMax, widthAvg, isExtreme) from the current data in tbl.
//
// This mirrors the original library's two-pass extreme-value protocol: a
// first call sees every line and may flag the column "extreme" if its
// widest value is more than double its average; layout.go then re-invokes
// measureColumn for extreme columns only, and this second pass ignores any
// line still wider than widthAvg*2 rather than letting one outlier value
// dominate the sizing decision for the rest of the column. widthAvg is
// deliberately only ever set once, on the pass where it was still zero: the
// second pass is for re-measuring width and widthMax under the exclusion
// rule, not for letting a skewed subset of values shift the average that
// classified the column as extreme in the first place.
func measureColumn(tbl *Table, col *Column, sb *scratchBuffer) {
	col.width = 0
	col.widthMax = 0

	var sum, count int
	for _, ln := range tbl.lines {
		data, ok := lineGetData(tbl, ln, col, sb)
		length := 0
		if ok {
			if mw := safeWidth(data); mw.ok {
				length = mw.n
			}
		}

		if length > col.widthMax {
			col.widthMax = length
		}
		if col.isExtreme && length > col.widthAvg*2 {
			continue
		}
		if col.noExtremes {
			sum += length
			count++
		}
		if length > col.width {
			col.width = length
		}
	}

	if count > 0 && col.widthAvg == 0 {
		col.widthAvg = sum / count
		if col.widthMax > col.widthAvg*2 {
			col.isExtreme = true
		}
	}

	col.widthMin = 0
	if header, ok := col.header.Data(); ok {
		if mw := safeWidth(header); mw.ok {
			col.widthMin = mw.n
		}
	}

	switch {
	case col.width < col.widthMin && !col.strictWidth:
		col.width = col.widthMin
	case col.hint.Kind == HintAbsolute && col.width < col.hint.Absolute && col.widthMin < col.hint.Absolute:
		col.width = col.hint.Absolute
	}
}
