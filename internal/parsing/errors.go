package parsing

import "fmt"

// ReferenceFormatError represents a curated reference whose shape is unusable,
// e.g. a missing species key column. These fail fast: continuing would
// silently corrupt every downstream score.
type ReferenceFormatError struct {
	Message string
}

func (e *ReferenceFormatError) Error() string {
	return fmt.Sprintf("curated reference format error: %s", e.Message)
}

// CellError represents a malformed cell in a tabular input, identified by its
// one-based row number and column header.
type CellError struct {
	Row    int
	Column string
	Value  string
	Cause  error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d, column %q: invalid value %q: %v", e.Row, e.Column, e.Value, e.Cause)
}

func (e *CellError) Unwrap() error {
	return e.Cause
}
