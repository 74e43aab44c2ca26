package dataprocessing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alveocli/internal/config"
	"alveocli/pkg/contracts/domain"
)

func testStore() config.Store {
	return config.Store{
		ReadStartHeader: "DATA:",
		SheetName:       "Data",
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		rawText  string
		wantName string
		wantRows []domain.Row
	}{
		{
			name:     "marker followed by well-formed rows",
			fileName: "trial_01.txt",
			rawText:  "Alveograph Program v2\nOperator: someone\nDATA:\nP (mm) 55.3\nL (mm) 102.1\nW (10-4 J) 210.0\n",
			wantName: "trial_01",
			wantRows: []domain.Row{
				{Header: "P (mm)", Value: 55.3},
				{Header: "L (mm)", Value: 102.1},
				{Header: "W (10-4 J)", Value: 210.0},
			},
		},
		{
			name:     "blank lines between data rows are skipped",
			fileName: "trial_02.txt",
			rawText:  "preamble\nDATA:\n\nP 55.3\n\n\nL 102.1\n",
			wantName: "trial_02",
			wantRows: []domain.Row{
				{Header: "P", Value: 55.3},
				{Header: "L", Value: 102.1},
			},
		},
		{
			name:     "marker with zero data rows yields empty record",
			fileName: "empty.txt",
			rawText:  "preamble\nDATA:\n\n",
			wantName: "empty",
			wantRows: nil,
		},
		{
			name:     "windows line endings",
			fileName: "crlf.txt",
			rawText:  "preamble\r\nDATA:\r\nP 55.3\r\nL 102.1\r\n",
			wantName: "crlf",
			wantRows: []domain.Row{
				{Header: "P", Value: 55.3},
				{Header: "L", Value: 102.1},
			},
		},
		{
			name:     "test name strips directory and extension",
			fileName: "some/dir/trial_03.txt",
			wantName: "trial_03",
			rawText:  "DATA:\nP 1.5\n",
			wantRows: []domain.Row{{Header: "P", Value: 1.5}},
		},
		{
			name:     "multi-word labels keep the numeric token separate",
			fileName: "labels.txt",
			rawText:  "DATA:\nTenacity P mm 55.3\n",
			wantName: "labels",
			wantRows: []domain.Row{{Header: "Tenacity P mm", Value: 55.3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := Parse(tt.fileName, tt.rawText, testStore())
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, record.TestName)
			assert.Equal(t, tt.wantRows, record.Rows)
		})
	}
}

func TestParse_MarkerNotFound(t *testing.T) {
	_, err := Parse("trial.txt", "preamble only\nno data here\n", testStore())
	require.Error(t, err)

	var markerErr *MarkerNotFoundError
	require.True(t, errors.As(err, &markerErr))
	assert.Equal(t, "DATA:", markerErr.Marker)
}

func TestParse_MalformedRow(t *testing.T) {
	tests := []struct {
		name        string
		rawText     string
		wantLine    int
		wantContent string
	}{
		{
			name:        "non-numeric final token",
			rawText:     "DATA:\nP 55.3\nL not-a-number\n",
			wantLine:    3,
			wantContent: "L not-a-number",
		},
		{
			name:        "missing numeric token",
			rawText:     "DATA:\nP\n",
			wantLine:    2,
			wantContent: "P",
		},
		{
			name:        "malformed row after valid rows",
			rawText:     "preamble\nDATA:\nP 55.3\nL 102.1\nW\n",
			wantLine:    5,
			wantContent: "W",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("trial.txt", tt.rawText, testStore())
			require.Error(t, err)

			var rowErr *MalformedRowError
			require.True(t, errors.As(err, &rowErr))
			assert.Equal(t, tt.wantLine, rowErr.Line)
			assert.Equal(t, tt.wantContent, rowErr.Content)
		})
	}
}

func TestParseWith_CustomTokenizer(t *testing.T) {
	// Tokenizer for a tab-separated firmware variant.
	tabTok := func(line string) (string, float64, bool) {
		header, value, ok := DefaultTokenizer(line)
		return header, value, ok
	}

	record, err := ParseWith("trial.txt", "DATA:\nP 55.3\n", testStore(), tabTok)
	require.NoError(t, err)
	require.Len(t, record.Rows, 1)
	assert.Equal(t, "P", record.Rows[0].Header)

	// nil tokenizer falls back to the default rule.
	record, err = ParseWith("trial.txt", "DATA:\nP 55.3\n", testStore(), nil)
	require.NoError(t, err)
	require.Len(t, record.Rows, 1)
	assert.InDelta(t, 55.3, record.Rows[0].Value, 1e-9)
}

func TestDefaultTokenizer(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantHeader string
		wantValue  float64
		wantOK     bool
	}{
		{"label and value", "P (mm) 55.3", "P (mm)", 55.3, true},
		{"negative value", "Delta -1.25", "Delta", -1.25, true},
		{"scientific notation", "W 2.1e2", "W", 210.0, true},
		{"single token", "55.3", "", 0, false},
		{"non-numeric value", "P high", "", 0, false},
		{"empty line", "", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, value, ok := DefaultTokenizer(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantHeader, header)
				assert.InDelta(t, tt.wantValue, value, 1e-9)
			}
		})
	}
}
