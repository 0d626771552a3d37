package casing

import (
	"strings"

	"seq-rebuild/internal/common"
	"seq-rebuild/utils"
)

const boundary = '-'

// CamelCase removes each '-' that is immediately followed by a lower-case
// ASCII letter and upper-cases that letter. A '-' followed by anything else
// (another '-', an upper-case letter, a non-letter, or the end of input) is
// kept verbatim.
//
//	CamelCase("foo-bar-baz")     == "fooBarBaz"
//	CamelCase("foo-Bar-Baz")     == "foo-Bar-Baz"
//	CamelCase("foo--bar----baz") == "foo-Bar---Baz"
func CamelCase(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	// set when a boundary was dropped and the next symbol must be recased
	pending := false

	for s != "" {
		r, rest, _ := common.UnconsRune(s)
		raw := s[:len(s)-len(rest)]

		switch {
		case pending:
			sb.WriteRune(utils.ToASCIIUpper(r))
			pending = false
		case r == boundary && startsLower(rest):
			pending = true
		default:
			sb.WriteString(raw)
		}

		s = rest
	}

	return sb.String()
}

// startsLower reports whether s is not already capitalized, i.e. whether
// upper-casing its first symbol would change it.
func startsLower(s string) bool {
	r, _, ok := common.UnconsRune(s)
	return ok && utils.IsASCIILower(r)
}
