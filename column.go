package coltable

// WidthHintKind distinguishes the two ways a column can request width from
// the layout solver.
type WidthHintKind int

const (
	// HintFraction requests a width proportional to the terminal width,
	// expressed as a fraction in (0, 1]. The zero value of WidthHint is
	// HintFraction with Fraction 0, which matches "no hint given": the
	// column floats freely and has no proportional floor when the table
	// must shrink (columns with Trunc still give up space before it).
	HintFraction WidthHintKind = iota

	// HintAbsolute requests a fixed number of display cells regardless of
	// terminal width. An absolute-hint column without Trunc never sheds
	// width during shrinking, even when the table as a whole does not fit;
	// with Trunc it sheds width only in the unrestricted shrink pass.
	HintAbsolute
)

// WidthHint tells the layout solver how a column would like to be sized.
// It replaces the C library's single float field (fractions in [0,1),
// absolute cell counts at >=1) with a tagged union, so the solver can
// distinguish the two cases by type instead of by comparing a magic
// threshold.
type WidthHint struct {
	Kind     WidthHintKind
	Fraction float64
	Absolute int
}

// Fraction builds a WidthHint requesting a width proportional to the
// available terminal width, e.g. Fraction(0.25) asks for a quarter of the
// terminal width.
func Fraction(f float64) WidthHint {
	return WidthHint{Kind: HintFraction, Fraction: f}
}

// Absolute builds a WidthHint requesting a fixed number of display cells.
func Absolute(cells int) WidthHint {
	return WidthHint{Kind: HintAbsolute, Absolute: cells}
}

// Column describes one vertical slot in a table: how its data should be
// measured, sized, and aligned.
type Column struct {
	seqnum int
	header Cell
	hint   WidthHint

	trunc       bool
	rightAlign  bool
	tree        bool
	noExtremes  bool
	strictWidth bool

	color    string
	hasColor bool

	// Fields recomputed by the layout solver on every Print/Render call.
	width     int
	widthMin  int
	widthMax  int
	widthAvg  int
	isExtreme bool
}

// ColumnOption configures a Column at construction time.
type ColumnOption func(*Column)

// Trunc allows the layout solver to truncate this column's data when the
// table does not fit the available width.
func Trunc() ColumnOption {
	return func(c *Column) { c.trunc = true }
}

// RightAlign right-justifies this column's data instead of the default
// left justification.
func RightAlign() ColumnOption {
	return func(c *Column) { c.rightAlign = true }
}

// TreeColumn marks this column as the one tree ancestry prefixes are drawn
// into. At most one column in a table should carry this option.
func TreeColumn() ColumnOption {
	return func(c *Column) { c.tree = true }
}

// NoExtremes turns on widthAvg tracking for this column: the first
// measurement records the average value width and flags the column
// "extreme" when its widest value is more than twice that average, and the
// solver may then re-measure it ignoring those outliers, so a few very
// wide values do not set the column's width (see measure.go).
func NoExtremes() ColumnOption {
	return func(c *Column) { c.noExtremes = true }
}

// StrictWidth stops measurement from raising this column's width to its
// header's width, the opposite of the default floor-to-header-width
// behavior. An absolute hint and the grow-to-fit phase can still widen it.
func StrictWidth() ColumnOption {
	return func(c *Column) { c.strictWidth = true }
}

// ColumnColor sets a default foreground color for every cell in this
// column. A cell or line color, if set, takes precedence.
func ColumnColor(color string) ColumnOption {
	return func(c *Column) { c.color = color; c.hasColor = true }
}

// SeqNum returns the column's position, 0-indexed from the left.
func (c *Column) SeqNum() int { return c.seqnum }

// Width returns the column's resolved display width. It is only
// meaningful after Print or Render has run.
func (c *Column) Width() int { return c.width }

// HeaderText returns the column's header text, or "" if none was given.
func (c *Column) HeaderText() string {
	text, _ := c.header.Data()
	return text
}

// Color returns the column's default color and whether one was set.
func (c *Column) Color() (string, bool) { return c.color, c.hasColor }

// IsTree reports whether this is the table's tree column.
func (c *Column) IsTree() bool { return c.tree }
