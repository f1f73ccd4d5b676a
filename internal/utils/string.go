package utils

import (
	"strconv"
	"strings"
)

// NormalizeWord trims surrounding whitespace and uppercases a query
// word. The engine works entirely in uppercase A-Z.
func NormalizeWord(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsUppercaseWord reports whether s is non-empty and contains only
// letters A-Z. Call after NormalizeWord.
func IsUppercaseWord(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// IsValidQuery checks whether an input line should be sent to the
// engine at all: non-empty, letters only once normalized, and not a
// single repeated character (mashed-key input like "aaaa").
func IsValidQuery(s string) bool {
	word := NormalizeWord(s)
	if !IsUppercaseWord(word) {
		return false
	}
	return !isRepetitive(word)
}

// isRepetitive checks for the same character repeated 3+ times.
func isRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}

// FormatWithCommas renders an int with thousands separators for CLI
// output.
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	s := strconv.Itoa(n)
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
