package coltable

// Table is the root aggregate of the rendering engine: an ordered set of
// Columns and a forest of Lines, plus the mode flags that steer
// measurement, layout, and formatting.
type Table struct {
	columns []*Column
	lines   []*Line
	symbols *Symbols

	raw          bool
	export       bool
	tree         bool
	noHeadings   bool
	maxOut       bool
	colorsWanted bool

	termReduce int

	// Discovered by Print/Render from the destination writer; zero until
	// then.
	isTerm    bool
	termWidth int
}

// TableOption configures a Table at construction time.
type TableOption func(*Table)

// WithRaw selects raw output mode: space-separated fields, no alignment
// or truncation, NUL bytes stripped.
func WithRaw() TableOption {
	return func(t *Table) { t.raw = true }
}

// WithExport selects export output mode: HEADER="value" pairs,
// space-separated, one output line per table line, double-quoted with
// shell-special characters escaped.
func WithExport() TableOption {
	return func(t *Table) { t.export = true }
}

// WithTree enables tree rendering: lines are printed depth-first from
// each root, and the tree column is prefixed with ancestry glyphs.
func WithTree() TableOption {
	return func(t *Table) { t.tree = true }
}

// WithNoHeadings suppresses the header row.
func WithNoHeadings() TableOption {
	return func(t *Table) { t.noHeadings = true }
}

// WithMaxOut tells the layout solver to grow columns to fill any leftover
// terminal width rather than leaving it as trailing blank space after the
// last column.
func WithMaxOut() TableOption {
	return func(t *Table) { t.maxOut = true }
}

// WithColors enables ANSI color output for lines/columns/cells that have
// a color set. Colors are never emitted unless this option is given,
// regardless of per-cell color assignments.
func WithColors() TableOption {
	return func(t *Table) { t.colorsWanted = true }
}

// WithTermReduce reserves n columns of the discovered terminal width,
// e.g. to leave room for a prompt printed alongside the table.
func WithTermReduce(n int) TableOption {
	return func(t *Table) { t.termReduce = n }
}

// WithSymbols overrides the glyphs used to draw tree ancestry lines.
func WithSymbols(s *Symbols) TableOption {
	return func(t *Table) { t.symbols = s }
}

// NewTable builds an empty Table with the given options applied.
func NewTable(opts ...TableOption) *Table {
	t := &Table{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewColumn appends a new column and returns it for further configuration
// via its own methods or by passing ColumnOptions here.
func (t *Table) NewColumn(header string, hint WidthHint, opts ...ColumnOption) *Column {
	col := &Column{seqnum: len(t.columns), hint: hint}
	if header != "" {
		col.header = NewCell(header)
	}
	for _, opt := range opts {
		opt(col)
	}
	t.columns = append(t.columns, col)
	return col
}

// Columns returns the table's columns in display order. The returned
// slice is owned by the table and must not be modified.
func (t *Table) Columns() []*Column { return t.columns }

// NumColumns returns the number of columns in the table.
func (t *Table) NumColumns() int { return len(t.columns) }

// NumLines returns the number of lines in the table, counting every
// descendant in a tree, not only roots.
func (t *Table) NumLines() int { return len(t.lines) }

// NewLine appends a new line to the table. If parent is non-nil, the new
// line is added as its last child; otherwise the new line is a root.
func (t *Table) NewLine(parent *Line) *Line {
	ln := &Line{idx: len(t.lines), parent: noParent, cells: make([]Cell, len(t.columns))}
	if parent != nil {
		ln.parent = parent.idx
		parent.children = append(parent.children, ln.idx)
	}
	t.lines = append(t.lines, ln)
	return ln
}
