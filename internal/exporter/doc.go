// Package exporter serializes aligned measurement batches into a
// formatted Excel workbook.
//
// Workbook wraps an in-memory excelize file. Each Export call lays one
// AlignedBatch out as a worksheet: a bold, centered header row
// ("test-name" followed by the measurement labels), then one row per
// instrument file with its values rendered to two decimal places.
// Close saves the workbook to disk with a write-then-rename so a failed
// save never leaves a truncated output file behind.
//
// Example usage:
//
//	wb := exporter.NewWorkbook()
//	if err := wb.Export(batch, "Data"); err != nil {
//	    return err
//	}
//	if err := wb.Close("results.xlsx"); err != nil {
//	    return err
//	}
//
// Export trusts the column count and order of the batch it is handed;
// schema validation happens earlier, in dataprocessing.Align, and the
// AlignedBatch parameter type is what guarantees it already ran.
package exporter
