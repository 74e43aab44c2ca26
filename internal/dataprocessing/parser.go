package dataprocessing

import (
	"strings"

	"alveocli/internal/config"
	"alveocli/pkg/contracts/domain"
)

// Parse extracts the measurements of one raw Alveograph instrument file
// using the marker configured in store and the DefaultTokenizer.
func Parse(fileName, rawText string, store config.Store) (domain.TestData, error) {
	return ParseWith(fileName, rawText, store, DefaultTokenizer)
}

// ParseWith is Parse with an explicit tokenization rule.
//
// The scan discards every line up to and including the first line
// containing store.ReadStartHeader; after that, each non-blank line
// must decompose into a label and a numeric value, appended in file
// order. A line that does not decompose fails the whole file with a
// MalformedRowError carrying its 1-based line number. A file whose
// marker is followed by no data lines parses to a TestData with no
// rows: legitimately empty output is uninformative, not malformed.
func ParseWith(fileName, rawText string, store config.Store, tok LineTokenizer) (domain.TestData, error) {
	if tok == nil {
		tok = DefaultTokenizer
	}

	lines := strings.Split(rawText, "\n")
	marker := store.ReadStartHeader

	start := -1
	for i, line := range lines {
		if strings.Contains(line, marker) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return domain.TestData{}, &MarkerNotFoundError{Marker: marker}
	}

	var rows []domain.Row
	for i := start; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		header, value, ok := tok(line)
		if !ok {
			return domain.TestData{}, &MalformedRowError{
				Line:    i + 1,
				Content: strings.TrimSpace(line),
			}
		}
		rows = append(rows, domain.NewRow(header, value))
	}

	return domain.NewTestData(domain.TestNameFromFile(fileName), rows), nil
}
