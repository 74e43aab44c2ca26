package exporter

import "fmt"

// DuplicateSheetError reports an Export call naming a worksheet that
// already exists in the same workbook.
type DuplicateSheetError struct {
	Sheet string
}

func (e *DuplicateSheetError) Error() string {
	return fmt.Sprintf("worksheet %q already exists in workbook", e.Sheet)
}

// WriteError reports a failure to save the workbook to its target path.
// The target's prior contents are untouched: the save writes a
// temporary file first and only renames it over the destination once
// fully written.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write workbook to %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
