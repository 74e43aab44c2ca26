package dataprocessing

import (
	"fmt"
	"strings"
)

// MarkerNotFoundError reports that a raw instrument file contains no
// occurrence of the configured start marker, so no data rows could be
// located.
type MarkerNotFoundError struct {
	Marker string
}

func (e *MarkerNotFoundError) Error() string {
	return fmt.Sprintf("start marker %q not found in instrument text", e.Marker)
}

// MalformedRowError reports a data line that could not be decomposed
// into a label and a numeric value. The whole file fails rather than
// skipping the line: a silently dropped row would desynchronize column
// alignment against the other files in the batch.
type MalformedRowError struct {
	Line    int
	Content string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed data row at line %d: %q", e.Line, e.Content)
}

// SchemaMismatchError reports a record whose header sequence differs
// from the canonical schema of the first record in the batch.
type SchemaMismatchError struct {
	Expected    []string
	Found       []string
	RecordIndex int
	TestName    string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("record %d (%s) headers [%s] do not match batch schema [%s]",
		e.RecordIndex, e.TestName,
		strings.Join(e.Found, ", "), strings.Join(e.Expected, ", "))
}
