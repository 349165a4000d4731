package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeName prepares a category name for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into one space
//
// Case is preserved. Use NameKey for comparisons.
func NormalizeName(name string) string {
	return strings.Join(strings.FieldsFunc(name, unicode.IsSpace), " ")
}

// NameKey is the case-insensitive comparison key for a category name.
func NameKey(name string) string {
	return strings.ToLower(NormalizeName(name))
}

// TruncateRunes cuts s to at most n runes.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}

// FirstLine returns the first non-blank line of s, trimmed.
func FirstLine(s string) string {
	for line := range strings.SplitSeq(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
