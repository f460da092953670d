package dataset

import "errors"

var (
	// ErrColumn indicates a requested column missing from the CSV header.
	ErrColumn = errors.New("dataset: missing column")

	// ErrNotNumeric indicates a y, weight or color column holding text.
	ErrNotNumeric = errors.New("dataset: column is not numeric")

	// ErrDate indicates a non-numeric x value that matches none of
	// DateLayouts.
	ErrDate = errors.New("dataset: unparsable date")
)
