package coltable

// noParent marks a Line that has no parent, i.e. a root of the forest.
const noParent = -1

// Cell holds one column's value for one line. The zero Cell has no data,
// which renders as absent (a blank field) rather than an empty string.
type Cell struct {
	data    string
	hasData bool

	color    string
	hasColor bool
}

// NewCell builds a present Cell with the given data.
func NewCell(data string) Cell {
	return Cell{data: data, hasData: true}
}

// Data returns the cell's text and whether it is present.
func (c Cell) Data() (string, bool) { return c.data, c.hasData }

// SetColor sets this cell's foreground color, which takes precedence over
// both its line's and its column's color.
func (c *Cell) SetColor(color string) { c.color = color; c.hasColor = true }

// Color returns the cell's color and whether one was set.
func (c Cell) Color() (string, bool) { return c.color, c.hasColor }

// Line is one row of a table. Lines form a forest addressed by index into
// the owning Table's arena rather than by pointer, so that cloning or
// growing the line slice never invalidates an ancestor reference: parent
// and children are plain ints/slices of ints, not pointers into Go's
// garbage-collected heap, which keeps the tree immune to slice reallocation
// as new lines are appended.
type Line struct {
	idx      int
	parent   int
	children []int

	cells []Cell

	color    string
	hasColor bool
}

// cellAt returns a pointer to the cell at seqnum, or nil if seqnum is out
// of range for this line (a line may have fewer cells than the table has
// columns, e.g. while it is still being built).
func (l *Line) cellAt(seqnum int) *Cell {
	if seqnum < 0 || seqnum >= len(l.cells) {
		return nil
	}
	return &l.cells[seqnum]
}

// SetCell sets the data for the column at seqnum, growing the line's cell
// slice if needed.
func (l *Line) SetCell(seqnum int, data string) {
	l.growTo(seqnum)
	l.cells[seqnum] = Cell{data: data, hasData: true}
}

// SetCellColor sets the color for the cell at seqnum, growing the line's
// cell slice if needed.
func (l *Line) SetCellColor(seqnum int, color string) {
	l.growTo(seqnum)
	l.cells[seqnum].color = color
	l.cells[seqnum].hasColor = true
}

func (l *Line) growTo(seqnum int) {
	for len(l.cells) <= seqnum {
		l.cells = append(l.cells, Cell{})
	}
}

// SetColor sets this line's default color, which takes precedence over
// its column's color but yields to any color set directly on a cell.
func (l *Line) SetColor(color string) { l.color = color; l.hasColor = true }

// Color returns the line's color and whether one was set.
func (l *Line) Color() (string, bool) { return l.color, l.hasColor }

// IsRoot reports whether this line has no parent.
func (l *Line) IsRoot() bool { return l.parent == noParent }

// NumChildren returns the number of direct children this line has.
func (l *Line) NumChildren() int { return len(l.children) }
