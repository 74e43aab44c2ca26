package dataprocessing

import (
	"strconv"
	"strings"
)

// LineTokenizer decomposes one data line into a measurement label and a
// numeric value. It reports ok=false when the line does not fit the
// instrument's fixed column format. The exact tokenization rule varies
// between instrument firmware revisions, so the parser accepts any
// LineTokenizer; DefaultTokenizer covers the format observed in
// Alveograph program output.
type LineTokenizer func(line string) (header string, value float64, ok bool)

// DefaultTokenizer splits a line on whitespace and treats the final
// field as the numeric value; the remaining fields joined by single
// spaces form the label. Values use standard decimal floating-point
// syntax (strconv.ParseFloat); locale-specific separators are not
// supported.
func DefaultTokenizer(line string) (string, float64, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", 0, false
	}

	value, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return "", 0, false
	}

	header := strings.Join(fields[:len(fields)-1], " ")
	return header, value, true
}
