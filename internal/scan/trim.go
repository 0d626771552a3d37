package scan

import (
	"strings"

	"seq-rebuild/internal/common"
)

// isSpace reports membership in the trim set. Carriage returns and
// Unicode spaces are deliberately not members.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// TrimLeft removes leading spaces, tabs and newlines.
func TrimLeft(s string) string {
	for {
		head, rest, ok := common.UnconsRune(s)
		if !ok || !isSpace(head) {
			return s
		}
		s = rest
	}
}

// TrimRight removes trailing spaces, tabs and newlines.
func TrimRight(s string) string {
	// the trim set is single-byte, so peeling bytes never splits a rune
	for s != "" && isSpace(rune(s[len(s)-1])) {
		s = s[:len(s)-1]
	}

	return s
}

// Trim removes spaces, tabs and newlines from both ends of s.
// Interior whitespace is left untouched.
func Trim(s string) string {
	return TrimRight(TrimLeft(s))
}

// ReplaceAll replaces every non-overlapping occurrence of from with to,
// scanning left to right. Text produced by to is never rescanned.
// An empty from returns s unchanged.
func ReplaceAll(s, from, to string) string {
	if from == "" {
		return s
	}

	var sb strings.Builder
	for {
		front, rest, found := common.SplitAround(s, from)
		if !found {
			sb.WriteString(s)
			return sb.String()
		}
		sb.WriteString(front)
		sb.WriteString(to)
		s = rest
	}
}

// Replace replaces the leftmost occurrence of from with to.
// An empty from returns s unchanged.
func Replace(s, from, to string) string {
	front, rest, found := common.SplitAround(s, from)
	if !found {
		return s
	}

	return front + to + rest
}
