package domain

import (
	"path/filepath"
	"strings"
)

// Row represents a single measurement extracted from an instrument file:
// an instrument-defined label (e.g. "P (mm)") and its numeric value.
// Order relative to the other rows of the same TestData is significant,
// it determines column position on export.
type Row struct {
	Header string  `json:"header"`
	Value  float64 `json:"value"`
}

// NewRow creates a new Row with the given header and value.
func NewRow(header string, value float64) Row {
	return Row{Header: header, Value: value}
}

// TestData represents all the measurements extracted from one instrument
// test file. Rows keep insertion order; insertion order is column order
// in the exported worksheet.
type TestData struct {
	TestName string `json:"test_name"`
	Rows     []Row  `json:"rows"`
}

// NewTestData creates a TestData with the given test name and rows.
func NewTestData(testName string, rows []Row) TestData {
	return TestData{TestName: testName, Rows: rows}
}

// Headers returns the ordered header sequence of the rows. This is the
// schema a batch of records is aligned against before export.
func (d TestData) Headers() []string {
	headers := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		headers[i] = row.Header
	}
	return headers
}

// TestNameFromFile derives a test name from an instrument file path by
// taking the base name and stripping the extension.
func TestNameFromFile(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
