package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"alveocli/internal/dataprocessing"
)

// headerCellText is the literal written to the top-left cell of every
// exported worksheet, above the test-name column.
const headerCellText = "test-name"

// testNameColWidth keeps the test-name column readable; measurement
// columns use the default width.
const testNameColWidth = 20.0

// Workbook accumulates exported worksheets in memory until Close saves
// them to disk.
type Workbook struct {
	file *excelize.File
	// pristine is true until the first Export replaces the default
	// sheet excelize creates, so saved workbooks contain only exported
	// sheets.
	pristine bool
}

// NewWorkbook creates an empty in-memory workbook.
func NewWorkbook() *Workbook {
	return &Workbook{
		file:     excelize.NewFile(),
		pristine: true,
	}
}

// Export lays batch out as one worksheet named sheetName. An empty
// batch produces an empty named sheet and succeeds: exporting zero
// selected files is a valid, if useless, action upstream. A sheet name
// already present in the workbook fails with DuplicateSheetError.
//
// Export does not re-validate the batch schema; the AlignedBatch type
// guarantees dataprocessing.Align already ran.
func (w *Workbook) Export(batch dataprocessing.AlignedBatch, sheetName string) error {
	if err := w.addSheet(sheetName); err != nil {
		return err
	}

	records := batch.Records()
	if len(records) == 0 {
		return nil
	}

	headerStyle, err := w.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	nameStyle, err := w.file.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create test-name style: %w", err)
	}
	numFmt := "0.00"
	valueStyle, err := w.file.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Alignment:    &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create value style: %w", err)
	}

	if err := w.setCell(sheetName, 1, 1, headerCellText, headerStyle); err != nil {
		return err
	}
	for c, header := range batch.Schema() {
		if err := w.setCell(sheetName, c+2, 1, header, headerStyle); err != nil {
			return err
		}
	}

	for r, record := range records {
		if err := w.setCell(sheetName, 1, r+2, record.TestName, nameStyle); err != nil {
			return err
		}
		for c, row := range record.Rows {
			if err := w.setCell(sheetName, c+2, r+2, row.Value, valueStyle); err != nil {
				return err
			}
		}
	}

	if err := w.file.SetColWidth(sheetName, "A", "A", testNameColWidth); err != nil {
		return fmt.Errorf("failed to set test-name column width: %w", err)
	}

	return nil
}

// addSheet creates the named worksheet, replacing the default sheet on
// the first export.
func (w *Workbook) addSheet(sheetName string) error {
	if w.pristine {
		if err := w.file.SetSheetName(w.file.GetSheetName(0), sheetName); err != nil {
			return fmt.Errorf("failed to name worksheet %q: %w", sheetName, err)
		}
		w.pristine = false
		return nil
	}

	idx, err := w.file.GetSheetIndex(sheetName)
	if err != nil {
		return fmt.Errorf("invalid worksheet name %q: %w", sheetName, err)
	}
	if idx != -1 {
		return &DuplicateSheetError{Sheet: sheetName}
	}
	if _, err := w.file.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create worksheet %q: %w", sheetName, err)
	}

	return nil
}

func (w *Workbook) setCell(sheetName string, col, row int, value interface{}, styleID int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell (%d,%d): %w", col, row, err)
	}
	if err := w.file.SetCellValue(sheetName, cell, value); err != nil {
		return fmt.Errorf("failed to write cell %s: %w", cell, err)
	}
	if err := w.file.SetCellStyle(sheetName, cell, cell, styleID); err != nil {
		return fmt.Errorf("failed to style cell %s: %w", cell, err)
	}
	return nil
}

// Close saves the workbook to outputPath and releases it. The save is
// atomic: bytes go to a temporary file in the target directory which is
// renamed over the destination only after a complete write, so a
// failure part way through never leaves a truncated workbook at
// outputPath.
func (w *Workbook) Close(outputPath string) error {
	defer w.file.Close()

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".alveo-*.xlsx")
	if err != nil {
		return &WriteError{Path: outputPath, Cause: err}
	}
	tmpPath := tmp.Name()

	if err := w.file.Write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &WriteError{Path: outputPath, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: outputPath, Cause: err}
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: outputPath, Cause: err}
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: outputPath, Cause: err}
	}

	return nil
}
