package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"alveocli/internal/config"
	"alveocli/internal/dataprocessing"
)

func testStore() config.Store {
	return config.Store{ReadStartHeader: "DATA:", SheetName: "Data"}
}

func writeInput(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunExport(t *testing.T) {
	dir := t.TempDir()
	inputA := writeInput(t, dir, "A.txt", "Alveograph output\nDATA:\nP 55.3\nL 102.1\n")
	inputB := writeInput(t, dir, "B.txt", "Alveograph output\nDATA:\nP 60.0\nL 98.7\n")
	outPath := filepath.Join(dir, "out.xlsx")

	err := runExport([]string{inputA, inputB}, outPath, "Data", testStore(), discardLogger())
	require.NoError(t, err)

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Data")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"test-name", "P", "L"}, rows[0])
	assert.Equal(t, []string{"A", "55.30", "102.10"}, rows[1])
	assert.Equal(t, []string{"B", "60.00", "98.70"}, rows[2])
}

func TestRunExport_SchemaMismatchWritesNothing(t *testing.T) {
	dir := t.TempDir()
	inputA := writeInput(t, dir, "A.txt", "DATA:\nP 55.3\nL 102.1\n")
	inputC := writeInput(t, dir, "C.txt", "DATA:\nL 90.0\nP 40.0\n")
	outPath := filepath.Join(dir, "out.xlsx")

	err := runExport([]string{inputA, inputC}, outPath, "Data", testStore(), discardLogger())
	require.Error(t, err)

	var schemaErr *dataprocessing.SchemaMismatchError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, 1, schemaErr.RecordIndex)
	assert.Equal(t, "C", schemaErr.TestName)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunExport_ParseFailureNamesFile(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "bad.txt", "DATA:\nP not-a-number\n")
	outPath := filepath.Join(dir, "out.xlsx")

	err := runExport([]string{input}, outPath, "Data", testStore(), discardLogger())
	require.Error(t, err)
	assert.ErrorContains(t, err, "bad.txt")

	var rowErr *dataprocessing.MalformedRowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 2, rowErr.Line)

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunExport_EmptyBatch(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.xlsx")

	err := runExport(nil, outPath, "Data", testStore(), discardLogger())
	require.NoError(t, err)

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Data")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDescribeExportError(t *testing.T) {
	described := describeExportError(&dataprocessing.MarkerNotFoundError{Marker: "DATA:"})
	assert.ErrorContains(t, described, "read_start_header")

	var markerErr *dataprocessing.MarkerNotFoundError
	assert.True(t, errors.As(described, &markerErr))

	plain := errors.New("something else")
	assert.Equal(t, plain, describeExportError(plain))
}
