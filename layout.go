package coltable

// solve runs the width-negotiation algorithm over all of tbl's columns,
// setting each column's final width field. It is a no-op on content that
// fits a non-terminal destination: width negotiation against a fixed
// terminal width only matters when there is a terminal width to negotiate
// against.
//
// The algorithm proceeds in phases, mirroring the original line-by-line:
//
//  1. Seed: measure every column's natural content width.
//  2. Shortcut: a non-terminal destination stops here and uses the seeded
//     widths as-is.
//  3. Extreme reduction: if the seeded total overflows the terminal and at
//     least one column was flagged "extreme" during measurement, re-measure
//     each extreme column once more, this time excluding its own outlier
//     values from the width computation.
//  4. Grow to fit: if the (possibly reduced) total still leaves room,
//     first let extreme columns absorb the slack up to their observed
//     max, then either round-robin +1 every column until the terminal is
//     full (max-out mode) or hand all the slack to the last column.
//  5. Shrink: if the total still overflows, repeatedly walk the columns
//     shedding one cell of width at a time, first only from columns
//     explicitly marked truncatable, then -- if that alone cannot close
//     the gap -- from every eligible column regardless of that flag. A
//     column with an absolute hint never sheds width unless it opted in
//     via Trunc, and even then only once the truncate-only pass has given
//     up. The tree column and any column already at its header-driven
//     floor never shed width at all.
func solve(tbl *Table, sb *scratchBuffer) {
	total := 0
	extremes := 0

	for i, col := range tbl.columns {
		measureColumn(tbl, col, sb)
		total += col.width
		if i != len(tbl.columns)-1 {
			total++
		}
		if col.isExtreme {
			extremes++
		}
	}

	if !tbl.isTerm {
		return
	}

	if total > tbl.termWidth && extremes > 0 {
		for _, col := range tbl.columns {
			if !col.isExtreme {
				continue
			}
			orig := col.width
			measureColumn(tbl, col, sb)
			if orig > col.width {
				total -= orig - col.width
			} else {
				extremes--
			}
		}
	}

	if total < tbl.termWidth {
		if extremes > 0 {
			for _, col := range tbl.columns {
				if !col.isExtreme {
					continue
				}
				add := tbl.termWidth - total
				if add != 0 && col.width+add > col.widthMax {
					add = col.widthMax - col.width
				}
				col.width += add
				total += add
				if total == tbl.termWidth {
					break
				}
			}
		}

		if total < tbl.termWidth && tbl.maxOut {
			for total < tbl.termWidth {
				progressed := false
				for _, col := range tbl.columns {
					col.width++
					total++
					progressed = true
					if total == tbl.termWidth {
						break
					}
				}
				if !progressed {
					// No columns to grow: nothing can ever close the
					// gap, so stop instead of spinning forever.
					break
				}
			}
		} else if total < tbl.termWidth {
			last := tbl.columns[len(tbl.columns)-1]
			if !last.rightAlign && tbl.termWidth-total > 0 {
				last.width += tbl.termWidth - total
				total = tbl.termWidth
			}
		}
	}

	truncOnly := true
	for total > tbl.termWidth {
		orig := total
		for _, col := range tbl.columns {
			if total <= tbl.termWidth {
				break
			}
			if col.hint.Kind == HintAbsolute && !col.trunc {
				continue
			}
			if col.tree {
				continue
			}
			if truncOnly && !col.trunc {
				continue
			}
			if col.width == col.widthMin {
				continue
			}

			if col.hint.Kind == HintFraction && col.width > 0 && total > 0 &&
				float64(col.width) > col.hint.Fraction*float64(tbl.termWidth) {
				col.width--
				total--
			}
			if col.hint.Kind == HintAbsolute && col.width > 0 && total > 0 && !truncOnly {
				col.width--
				total--
			}
		}
		if orig == total {
			if truncOnly {
				truncOnly = false
			} else {
				break
			}
		}
	}
}
