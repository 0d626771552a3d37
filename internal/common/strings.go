package common

import (
	"strings"
	"unicode/utf8"
)

// UnknownStr is the rendering used for enum values without a name.
const UnknownStr = "unknown"

// SplitAround finds the leftmost occurrence of sep in s and returns the text
// before it and the text after it. found is false when sep does not occur or is empty.
func SplitAround(s, sep string) (front, rest string, found bool) {
	if sep == "" {
		return s, "", false
	}

	i := strings.Index(s, sep)
	if i < 0 {
		return s, "", false
	}

	return s[:i], s[i+len(sep):], true
}

// UnconsRune decodes the first rune of s and returns it with the remainder.
// ok is false for an empty string. Invalid UTF-8 bytes are returned as
// utf8.RuneError with a width of one byte, so the remainder always shrinks.
func UnconsRune(s string) (head rune, rest string, ok bool) {
	if s == "" {
		return 0, "", false
	}

	r, size := utf8.DecodeRuneInString(s)

	return r, s[size:], true
}
