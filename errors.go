package coltable

import "errors"

// Sentinel errors returned by the package. Callers should compare against
// these with errors.Is rather than matching on message text.
var (
	// ErrNilTable is returned by any Table method called on a nil *Table.
	ErrNilTable = errors.New("coltable: table is nil")

	// ErrInvalidArgument is returned when a caller-supplied argument (a
	// column sequence number out of range, a non-slice value passed to
	// FromRecords, ...) cannot be used.
	ErrInvalidArgument = errors.New("coltable: invalid argument")

	// ErrScratchBufferExhausted is returned internally when a tree prefix
	// would overrun the scratch buffer sized for the
	// current render. It surfaces to the caller only if it prevents every
	// cell in the affected line from rendering; most of the time a single
	// long ancestry chain simply renders that one cell as absent, matching
	// the original library's "give up, print nothing" behavior on overflow.
	ErrScratchBufferExhausted = errors.New("coltable: scratch buffer too small for this row")
)
