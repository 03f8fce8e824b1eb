// Package classifier separates data-bearing bulletin lines from headers and
// boilerplate in raw page text.
package classifier

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Boilerplate substrings that mark header rows in every bulletin page.
const (
	headerMarker = "Cenová lokalita"
	columnMarker = "Dodávky"
)

// DataLines splits page text into lines and keeps only those that can open
// a locality record: non-empty, free of header boilerplate, and starting
// with a letter (the Czech accented alphabet included). Numeric-initial
// continuation lines and totals are expected noise and dropped silently.
// A page with no qualifying lines yields an empty slice.
func DataLines(pageText string) []string {
	var lines []string
	for _, line := range strings.Split(pageText, "\n") {
		if IsDataLine(line) {
			lines = append(lines, line)
		}
	}
	return lines
}

// IsDataLine reports whether a single line passes the classifier.
func IsDataLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.Contains(line, headerMarker) || strings.Contains(line, columnMarker) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(trimmed)
	return unicode.IsLetter(first)
}
